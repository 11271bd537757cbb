package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var seededAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(DefaultSeed(demon.Thresholds{ListSize: 2, ExtendedListSize: 4}, seededAt))
}

func TestSeedPlacesDemonsInOrder(t *testing.T) {
	store := newTestStore()

	err := store.Read(t.Context(), func(ctx context.Context, repos txn.Repositories) error {
		ranked, err := repos.Demons.ListRanked(ctx)
		require.NoError(t, err)
		require.Len(t, ranked, 5)
		for i, d := range ranked {
			assert.Equal(t, i+1, d.Position)
		}
		assert.False(t, ranked[3].Legacy)
		assert.True(t, ranked[4].Legacy)

		events, err := repos.History.ListUntil(ctx, seededAt)
		require.NoError(t, err)
		replayed, err := history.Replay(events)
		require.NoError(t, err)
		assert.Len(t, replayed, 5)
		return nil
	})
	require.NoError(t, err)
}

func TestWriteRollsBackOnError(t *testing.T) {
	store := newTestStore()
	boom := errors.New("boom")

	err := store.Write(t.Context(), txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		require.NoError(t, repos.Demons.ShiftPositions(ctx, 1, 5, 1))
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.Read(t.Context(), func(ctx context.Context, repos txn.Repositories) error {
		positions, err := repos.Demons.Positions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, positions)
		return nil
	})
	require.NoError(t, err)
}

func TestReadUnitRejectsWrites(t *testing.T) {
	store := newTestStore()

	err := store.Read(t.Context(), func(ctx context.Context, repos txn.Repositories) error {
		_, err := repos.Records.Create(ctx, record.Record{DemonID: 1, PlayerID: 1})
		return err
	})
	require.ErrorIs(t, err, errReadOnly)
}

func TestReadsObserveCommittedSnapshotsOnly(t *testing.T) {
	store := newTestStore()
	ctx := t.Context()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
				// Rotate the last demon to the top: the list is briefly gapless
				// only after all three steps.
				if err := repos.Demons.SetPosition(ctx, 5, 0); err != nil {
					return err
				}
				if err := repos.Demons.ShiftPositions(ctx, 1, 4, 1); err != nil {
					return err
				}
				return repos.Demons.SetPosition(ctx, 5, 1)
			})
		}()
		go func() {
			defer wg.Done()
			_ = store.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
				positions, err := repos.Demons.Positions(ctx)
				if err != nil {
					return err
				}
				assert.Equal(t, []int{1, 2, 3, 4, 5}, positions)
				return nil
			})
		}()
	}
	wg.Wait()
}

func TestRecordLookups(t *testing.T) {
	store := newTestStore()
	ctx := t.Context()

	err := store.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		_, err := repos.Records.Create(ctx, record.Record{DemonID: 1, PlayerID: 2, Status: record.StatusRejected, Video: "https://vimeo.com/1"})
		require.NoError(t, err)
		created, err := repos.Records.Create(ctx, record.Record{DemonID: 1, PlayerID: 2, Status: record.StatusPending})
		require.NoError(t, err)

		active, ok, err := repos.Records.FindActive(ctx, 2, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, created.ID, active.ID)

		byVideo, ok, err := repos.Records.FindByVideo(ctx, "https://vimeo.com/1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, record.StatusRejected, byVideo.Status)

		_, ok, err = repos.Records.FindByVideo(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestHistoryTimestampsNeverDecrease(t *testing.T) {
	store := newTestStore()

	err := store.Write(t.Context(), txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		ev, err := repos.History.Append(ctx, history.Event{DemonID: 1, OldPosition: 1, NewPosition: 2, At: seededAt.Add(-time.Hour)})
		require.NoError(t, err)
		assert.Equal(t, seededAt, ev.At)
		return nil
	})
	require.NoError(t, err)
}
