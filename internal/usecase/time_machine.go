package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

// EarliestListDate is the fallback history boundary: the list did not exist
// before it.
var EarliestListDate = time.Date(2017, time.August, 5, 0, 0, 0, 0, time.UTC)

// snapshotSettleWindow bounds how long after its timestamp an event can
// still be committed. Snapshots younger than this are never cached.
const snapshotSettleWindow = time.Minute

// RankedDemon is a demon at its (possibly historical) position.
type RankedDemon struct {
	Position int
	Demon    demon.Demon
}

// Snapshot is the ranked list as of At. A nil At is the live list.
type Snapshot struct {
	At     *time.Time
	Demons []RankedDemon
}

// PlacementCache memoizes replayed history for settled timestamps.
type PlacementCache interface {
	GetOrLoad(ctx context.Context, at time.Time, load func(context.Context) ([]history.Placement, error)) ([]history.Placement, error)
}

type TimeMachineConfig struct {
	EarliestDate time.Time
	Workers      int
}

// TimeMachine answers what the ranked list looked like at a point in time by
// folding the append only history.
type TimeMachine struct {
	tx           txn.Manager
	cache        PlacementCache
	earliestDate time.Time
	workers      int
	metrics      *Metrics
	logger       *logging.Logger
	now          func() time.Time
}

func NewTimeMachine(tx txn.Manager, cache PlacementCache, cfg TimeMachineConfig, metrics *Metrics, logger *logging.Logger) *TimeMachine {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.EarliestDate.IsZero() {
		cfg.EarliestDate = EarliestListDate
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return &TimeMachine{
		tx:           tx,
		cache:        cache,
		earliestDate: cfg.EarliestDate,
		workers:      cfg.Workers,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

func (m *TimeMachine) Reconstruct(ctx context.Context, at *time.Time) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TimeMachine.Reconstruct")
	defer span.End()

	var out Snapshot
	err := m.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		var err error
		out, err = m.reconstructIn(ctx, repos, at)
		return err
	})
	return out, err
}

// ReconstructMany builds one snapshot per timestamp on a bounded worker
// pool. The result order follows ats.
func (m *TimeMachine) ReconstructMany(ctx context.Context, ats []time.Time) ([]Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TimeMachine.ReconstructMany")
	defer span.End()

	if len(ats) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(min(m.workers, len(ats)))
	if err != nil {
		return nil, fmt.Errorf("create snapshot worker pool: %w", err)
	}
	defer pool.Release()

	var (
		out     = make([]Snapshot, len(ats))
		errs    = make([]error, len(ats))
		workers sync.WaitGroup
	)
	for i := range ats {
		at := ats[i]
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i], errs[i] = m.Reconstruct(ctx, &at)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit snapshot task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// reconstructIn runs inside a read unit so the history and the demon rows
// come from the same snapshot.
func (m *TimeMachine) reconstructIn(ctx context.Context, repos txn.Repositories, at *time.Time) (Snapshot, error) {
	now := m.now()
	if at == nil || !at.Before(now) {
		ranked, err := repos.Demons.ListRanked(ctx)
		if err != nil {
			return Snapshot{}, err
		}
		out := make([]RankedDemon, 0, len(ranked))
		for _, d := range ranked {
			out = append(out, RankedDemon{Position: d.Position, Demon: d})
		}
		return Snapshot{Demons: out}, nil
	}

	boundary := m.earliestDate
	earliest, ok, err := repos.History.Earliest(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if ok {
		boundary = earliest
	}
	effective := at.UTC()
	if effective.Before(boundary) {
		effective = boundary
	}

	placements, err := m.placements(ctx, repos, effective, now)
	if err != nil {
		return Snapshot{}, err
	}

	ids := make([]int64, 0, len(placements))
	for _, p := range placements {
		ids = append(ids, p.DemonID)
	}
	demons, err := repos.Demons.ListByIDs(ctx, ids)
	if err != nil {
		return Snapshot{}, err
	}
	byID := make(map[int64]demon.Demon, len(demons))
	for _, d := range demons {
		byID[d.ID] = d
	}

	out := make([]RankedDemon, 0, len(placements))
	for _, p := range placements {
		d, ok := byID[p.DemonID]
		if !ok {
			return Snapshot{}, listerr.Internal(fmt.Errorf("history references unknown demon %d", p.DemonID))
		}
		out = append(out, RankedDemon{Position: p.Position, Demon: d})
	}
	return Snapshot{At: &effective, Demons: out}, nil
}

func (m *TimeMachine) placements(ctx context.Context, repos txn.Repositories, at, now time.Time) ([]history.Placement, error) {
	load := func(ctx context.Context) ([]history.Placement, error) {
		started := time.Now()
		defer m.metrics.observeSnapshot(started)

		events, err := repos.History.ListUntil(ctx, at)
		if err != nil {
			return nil, err
		}
		placements, err := history.Replay(events)
		if err != nil {
			m.logger.ErrorContext(ctx, "demon history cannot be replayed", "at", at, "error", err)
			return nil, listerr.Internal(err)
		}
		return placements, nil
	}

	if m.cache == nil || now.Sub(at) < snapshotSettleWindow {
		return load(ctx)
	}
	return m.cache.GetOrLoad(ctx, at, load)
}
