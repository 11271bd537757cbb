package cache

import (
	"context"
	"slices"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/history"
	basecache "github.com/riskibarqy/demonlist/internal/platform/cache"
)

// SnapshotCache memoizes replayed list placements by timestamp. History is
// append only, so placements of a settled timestamp never change; the TTL
// only bounds memory.
type SnapshotCache struct {
	cache *basecache.Store[[]history.Placement]
}

func NewSnapshotCache(cache *basecache.Store[[]history.Placement]) *SnapshotCache {
	return &SnapshotCache{cache: cache}
}

func (c *SnapshotCache) GetOrLoad(ctx context.Context, at time.Time, load func(context.Context) ([]history.Placement, error)) ([]history.Placement, error) {
	items, err := c.cache.GetOrLoad(ctx, snapshotKey(at), func(ctx context.Context) ([]history.Placement, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func snapshotKey(at time.Time) string {
	return "snapshot:" + at.UTC().Format(time.RFC3339Nano)
}
