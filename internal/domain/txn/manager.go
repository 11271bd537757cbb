package txn

import (
	"context"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/nationality"
	"github.com/riskibarqy/demonlist/internal/domain/note"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/submitter"
)

// Lock names the mutual exclusion scope of a write unit. Units holding the
// same lock never interleave.
type Lock int64

const (
	LockRankedList Lock = iota + 1
	LockSubmissions
)

func (l Lock) String() string {
	switch l {
	case LockRankedList:
		return "ranked_list"
	case LockSubmissions:
		return "submissions"
	default:
		return "unknown"
	}
}

// Repositories bundles the repositories bound to one unit of work.
type Repositories struct {
	Demons        demon.Repository
	Players       player.Repository
	Nationalities nationality.Repository
	Submitters    submitter.Repository
	Records       record.Repository
	Notes         note.Repository
	History       history.Repository
}

// Func is the body of a unit of work.
type Func func(ctx context.Context, repos Repositories) error

// Manager runs units of work against the backing store. Read observes one
// consistent snapshot. Write is atomic: when fn returns an error nothing it
// did is kept.
type Manager interface {
	Read(ctx context.Context, fn Func) error
	Write(ctx context.Context, lock Lock, fn Func) error
}
