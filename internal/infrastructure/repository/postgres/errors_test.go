package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
	"github.com/riskibarqy/demonlist/internal/platform/resilience"
)

func TestTranslate(t *testing.T) {
	store := NewStore(nil, logging.NewNop())

	tests := []struct {
		name string
		err  error
		want listerr.Kind
	}{
		{name: "pool closed", err: fmt.Errorf("begin tx: %w", sql.ErrConnDone), want: listerr.KindDatabaseConnectionError},
		{name: "timeout", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: listerr.KindDatabaseConnectionError},
		{name: "connection exception class", err: &pq.Error{Code: "08006"}, want: listerr.KindDatabaseConnectionError},
		{name: "too many connections", err: &pq.Error{Code: "53300"}, want: listerr.KindDatabaseConnectionError},
		{name: "undefined column", err: fmt.Errorf("get demon: %w", &pq.Error{Code: "42703"}), want: listerr.KindInternalServerError},
		{name: "unexpected no rows", err: fmt.Errorf("max position: %w", sql.ErrNoRows), want: listerr.KindInternalServerError},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: listerr.KindDatabaseError},
		{name: "circuit open", err: fmt.Errorf("read: %w", resilience.ErrCircuitOpen), want: listerr.KindDatabaseConnectionError},
		{name: "plain failure", err: fmt.Errorf("boom"), want: listerr.KindDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.translate(t.Context(), "test", tt.err)
			if !listerr.Is(got, tt.want) {
				t.Fatalf("expected kind %d, got %v", tt.want, got)
			}
		})
	}
}

func TestTranslateKeepsDomainErrors(t *testing.T) {
	store := NewStore(nil, logging.NewNop())
	domainErr := listerr.InvalidPosition(4)

	got := store.translate(t.Context(), "test", fmt.Errorf("insert: %w", domainErr))
	e, ok := listerr.As(got)
	if !ok || e.Kind != listerr.KindInvalidPosition || e.Maximal != 4 {
		t.Fatalf("expected domain error to pass through, got %v", got)
	}
	if store.translate(t.Context(), "test", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestIsSerializationFailure(t *testing.T) {
	if !isSerializationFailure(fmt.Errorf("commit tx: %w", &pq.Error{Code: "40001"})) {
		t.Fatalf("expected 40001 to be retried")
	}
	if !isSerializationFailure(&pq.Error{Code: "40P01"}) {
		t.Fatalf("expected deadlock to be retried")
	}
	if isSerializationFailure(&pq.Error{Code: "23505"}) {
		t.Fatalf("unique violation must not be retried")
	}
	if isSerializationFailure(nil) {
		t.Fatalf("nil must not be retried")
	}
}

func TestIsDatabaseDownIgnoresCancellation(t *testing.T) {
	if isDatabaseDown(context.Canceled) {
		t.Fatalf("cancelled requests must not trip the breaker")
	}
	if !isDatabaseDown(&pq.Error{Code: "57P01"}) {
		t.Fatalf("admin shutdown should trip the breaker")
	}
}
