package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
	"github.com/riskibarqy/demonlist/internal/platform/resilience"
)

const (
	// advisoryNamespace keeps demonlist lock keys apart from other users of
	// pg_advisory_xact_lock on the same database.
	advisoryNamespace int64 = 0x646c << 32

	maxSerializationAttempts = 3
)

// Store runs units of work as Postgres transactions.
type Store struct {
	db      *sqlx.DB
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
}

var _ txn.Manager = (*Store)(nil)

func NewStore(db *sqlx.DB, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{db: db, logger: logger}
}

// WithCircuitBreaker fails units of work fast while the database keeps
// refusing connections.
func (s *Store) WithCircuitBreaker(breaker *resilience.CircuitBreaker) *Store {
	s.breaker = breaker
	return s
}

// Read runs fn in a read only repeatable read transaction, so every query
// observes the same committed snapshot.
func (s *Store) Read(ctx context.Context, fn txn.Func) error {
	err := s.guard(func() error {
		return s.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, 0, fn)
	})
	return s.translate(ctx, "read", err)
}

// Write runs fn in a serializable transaction holding the advisory lock of
// the given scope. The snapshot is taken by the lock statement itself, so a
// unit that waited for the lock may conflict with the previous holder; such
// serialization failures are retried.
func (s *Store) Write(ctx context.Context, lock txn.Lock, fn txn.Func) error {
	var err error
	for attempt := 1; attempt <= maxSerializationAttempts; attempt++ {
		err = s.guard(func() error {
			return s.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, lock, fn)
		})
		if !isSerializationFailure(err) {
			break
		}
		s.logger.WarnContext(ctx, "retrying serializable write",
			"lock", lock.String(),
			"attempt", attempt,
			"error", err,
		)
	}
	return s.translate(ctx, "write "+lock.String(), err)
}

func (s *Store) guard(fn func() error) error {
	if s.breaker == nil {
		return fn()
	}
	return s.breaker.Guard(fn, isDatabaseDown)
}

func (s *Store) run(ctx context.Context, opts *sql.TxOptions, lock txn.Lock, fn txn.Func) error {
	tx, err := s.db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if lock != 0 {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, advisoryNamespace|int64(lock)); err != nil {
			return fmt.Errorf("acquire %s lock: %w", lock, err)
		}
	}

	if err := fn(ctx, repositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func repositories(tx *sqlx.Tx) txn.Repositories {
	return txn.Repositories{
		Demons:        &DemonRepository{tx: tx},
		Players:       &PlayerRepository{tx: tx},
		Nationalities: &NationalityRepository{tx: tx},
		Submitters:    &SubmitterRepository{tx: tx},
		Records:       &RecordRepository{tx: tx},
		Notes:         &NoteRepository{tx: tx},
		History:       &HistoryRepository{tx: tx},
	}
}
