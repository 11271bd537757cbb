package record

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a record.
type Status string

const (
	StatusPending            Status = "pending"
	StatusUnderConsideration Status = "under_consideration"
	StatusApproved           Status = "approved"
	StatusRejected           Status = "rejected"
)

var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusApproved:           {},
		StatusRejected:           {},
		StatusUnderConsideration: {},
	},
	StatusUnderConsideration: {
		StatusApproved: {},
		StatusRejected: {},
	},
}

func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusUnderConsideration, StatusApproved, StatusRejected:
		return s, nil
	default:
		return "", fmt.Errorf("unknown record status: %q", raw)
	}
}

// CanTransitionTo reports whether a record in s may move to next. Approved
// and rejected records are resolved and never change status again.
func (s Status) CanTransitionTo(next Status) bool {
	_, ok := transitions[s][next]
	return ok
}

func (s Status) Resolved() bool {
	return s == StatusApproved || s == StatusRejected
}

// Active statuses block a second submission for the same player and demon.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusUnderConsideration || s == StatusApproved
}

// Record is a player's claimed completion of a demon.
type Record struct {
	ID          int64
	DemonID     int64
	PlayerID    int64
	SubmitterID int64
	Progress    int
	Video       string
	Status      Status
	CreatedAt   time.Time
}
