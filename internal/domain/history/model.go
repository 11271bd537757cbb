package history

import (
	"errors"
	"fmt"
	"time"
)

var ErrCorruptHistory = errors.New("corrupt demon history")

// Event is one position-affecting mutation of the ranked list. A zero
// OldPosition marks an insertion, a zero NewPosition a removal.
type Event struct {
	ID          int64
	DemonID     int64
	OldPosition int
	NewPosition int
	At          time.Time
}

// Placement is a demon's position in a replayed list.
type Placement struct {
	DemonID  int64
	Position int
}

// Replay folds events, ordered by time then id, into the ranked list they
// produce starting from an empty list. Each event is applied with the same
// shift rules the live list uses, so the result is gapless whenever the
// history is.
func Replay(events []Event) ([]Placement, error) {
	ordering := make([]int64, 0, len(events))

	for _, ev := range events {
		if ev.OldPosition == 0 && ev.NewPosition == 0 {
			return nil, fmt.Errorf("%w: event %d has neither old nor new position", ErrCorruptHistory, ev.ID)
		}

		if ev.OldPosition > 0 {
			idx := ev.OldPosition - 1
			if idx >= len(ordering) || ordering[idx] != ev.DemonID {
				return nil, fmt.Errorf("%w: event %d expects demon %d at %d", ErrCorruptHistory, ev.ID, ev.DemonID, ev.OldPosition)
			}
			ordering = append(ordering[:idx], ordering[idx+1:]...)
		}

		if ev.NewPosition > 0 {
			idx := ev.NewPosition - 1
			if idx > len(ordering) {
				return nil, fmt.Errorf("%w: event %d places demon %d at %d beyond %d", ErrCorruptHistory, ev.ID, ev.DemonID, ev.NewPosition, len(ordering)+1)
			}
			ordering = append(ordering, 0)
			copy(ordering[idx+1:], ordering[idx:])
			ordering[idx] = ev.DemonID
		}
	}

	out := make([]Placement, 0, len(ordering))
	for i, demonID := range ordering {
		out = append(out, Placement{DemonID: demonID, Position: i + 1})
	}
	return out, nil
}
