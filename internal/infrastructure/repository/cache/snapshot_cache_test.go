package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/demonlist/internal/domain/history"
	basecache "github.com/riskibarqy/demonlist/internal/platform/cache"
)

func TestSnapshotCache_LoadsOncePerTimestamp(t *testing.T) {
	c := NewSnapshotCache(basecache.NewStore[[]history.Placement](time.Minute))
	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	calls := 0
	load := func(context.Context) ([]history.Placement, error) {
		calls++
		return []history.Placement{{DemonID: 7, Position: 1}}, nil
	}

	first, err := c.GetOrLoad(t.Context(), at, load)
	require.NoError(t, err)
	second, err := c.GetOrLoad(t.Context(), at.In(time.FixedZone("UTC+2", 2*3600)), load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	_, err = c.GetOrLoad(t.Context(), at.Add(time.Second), load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSnapshotCache_ReturnsCopies(t *testing.T) {
	c := NewSnapshotCache(basecache.NewStore[[]history.Placement](time.Minute))
	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	load := func(context.Context) ([]history.Placement, error) {
		return []history.Placement{{DemonID: 7, Position: 1}}, nil
	}

	first, err := c.GetOrLoad(t.Context(), at, load)
	require.NoError(t, err)
	first[0].DemonID = 99

	second, err := c.GetOrLoad(t.Context(), at, load)
	require.NoError(t, err)
	assert.Equal(t, int64(7), second[0].DemonID)
}
