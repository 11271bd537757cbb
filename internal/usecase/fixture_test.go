package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

var seededAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// testThresholds keeps the seeded list small: positions 1-2 are the main
// list, 3-4 the extended list and 5 is legacy.
var testThresholds = demon.Thresholds{ListSize: 2, ExtendedListSize: 4}

const (
	tartarusID   int64 = 1
	kenosID      int64 = 2
	sonicWaveID  int64 = 3
	bloodbathID  int64 = 4
	yatagarasuID int64 = 5

	riotID       int64 = 1
	cyclicID     int64 = 2
	knobbelboyID int64 = 3
	zoinkID      int64 = 4
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.current = c.current.Add(d)
	return c.current
}

type testEnv struct {
	store      *memory.Store
	clock      *fakeClock
	positions  *PositionService
	records    *RecordService
	machine    *TimeMachine
	overview   *OverviewService
	demons     *DemonService
	players    *PlayerService
	submitters *SubmitterService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore(memory.DefaultSeed(testThresholds, seededAt))
	clock := &fakeClock{current: seededAt.Add(24 * time.Hour)}
	logger := logging.NewNop()
	metrics := NewMetrics(nil)

	env := &testEnv{
		store:      store,
		clock:      clock,
		positions:  NewPositionService(store, testThresholds, metrics, logger),
		records:    NewRecordService(store, testThresholds, metrics, logger),
		machine:    NewTimeMachine(store, nil, TimeMachineConfig{Workers: 2}, metrics, logger),
		demons:     NewDemonService(store, logger),
		players:    NewPlayerService(store, logger),
		submitters: NewSubmitterService(store, logger),
	}
	env.positions.now = clock.now
	env.records.now = clock.now
	env.machine.now = clock.now
	env.overview = NewOverviewService(store, env.machine)
	return env
}

// ranked returns the live list as demon ids ordered by position.
func (e *testEnv) ranked(t *testing.T) []int64 {
	t.Helper()

	var ids []int64
	err := e.store.Read(context.Background(), func(ctx context.Context, repos txn.Repositories) error {
		items, err := repos.Demons.ListRanked(ctx)
		if err != nil {
			return err
		}
		for i, d := range items {
			if d.Position != i+1 {
				t.Fatalf("ranked list not contiguous at index %d: position %d", i, d.Position)
			}
			ids = append(ids, d.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("read ranked list: %v", err)
	}
	return ids
}

func (e *testEnv) demon(t *testing.T, id int64) demon.Demon {
	t.Helper()

	detail, err := e.demons.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get demon %d: %v", id, err)
	}
	return detail.Demon
}

func snapshotIDs(snapshot Snapshot) []int64 {
	ids := make([]int64, 0, len(snapshot.Demons))
	for _, d := range snapshot.Demons {
		ids = append(ids, d.Demon.ID)
	}
	return ids
}
