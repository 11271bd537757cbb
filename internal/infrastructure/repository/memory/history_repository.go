package memory

import (
	"context"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/history"
)

type HistoryRepository struct {
	unit
}

func (r *HistoryRepository) Append(_ context.Context, item history.Event) (history.Event, error) {
	if err := r.writable(); err != nil {
		return history.Event{}, err
	}
	// Timestamps never decrease so replay order equals append order.
	if n := len(r.data.events); n > 0 && item.At.Before(r.data.events[n-1].At) {
		item.At = r.data.events[n-1].At
	}
	r.data.seq.event++
	item.ID = r.data.seq.event
	r.data.events = append(r.data.events, item)
	return item, nil
}

// ListUntil relies on events being appended in time order.
func (r *HistoryRepository) ListUntil(_ context.Context, at time.Time) ([]history.Event, error) {
	out := make([]history.Event, 0, len(r.data.events))
	for _, item := range r.data.events {
		if item.At.After(at) {
			break
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *HistoryRepository) Earliest(_ context.Context) (time.Time, bool, error) {
	if len(r.data.events) == 0 {
		return time.Time{}, false, nil
	}
	return r.data.events[0].At, true, nil
}
