package history

import (
	"context"
	"time"
)

// Repository is the append-only log of ranked list mutations.
type Repository interface {
	Append(ctx context.Context, item Event) (Event, error)
	// ListUntil returns every event at or before at, ordered by time then id.
	ListUntil(ctx context.Context, at time.Time) ([]Event, error)
	Earliest(ctx context.Context) (time.Time, bool, error)
}
