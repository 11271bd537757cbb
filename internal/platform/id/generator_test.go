package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_SortsByTime(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	g := &RandomGenerator{now: func() time.Time { return now }}

	first, err := g.NewID()
	require.NoError(t, err)
	now = now.Add(time.Millisecond)
	second, err := g.NewID()
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.Less(t, first, second)
}

func TestRandomGenerator_Unique(t *testing.T) {
	g := NewRandomGenerator()
	seen := make(map[string]struct{}, 256)
	for range 256 {
		v, err := g.NewID()
		require.NoError(t, err)
		_, dup := seen[v]
		require.False(t, dup, "duplicate id %s", v)
		seen[v] = struct{}{}
	}
}
