package scene

import (
	"context"
	"encoding/json"
	"time"

	"github.com/scenegen/scenegen/pkg/cache"
	"github.com/scenegen/scenegen/pkg/geom"
)

// LocalBoundsTTL is how long cached local bounding volumes stay valid.
// Local bounds are pose-invariant, so the TTL only guards against object
// meshes being swapped out in a long-lived simulator.
const LocalBoundsTTL = time.Hour

// CachedBackend wraps a Backend and caches pose-invariant local bounding
// volume lookups. Pose-dependent calls (world bounds, poses) pass through
// untouched.
//
// Scene generation rebuilds the relation tree for every attempt, refetching
// every object's local bounds each time; with a remote simulator those
// round-trips dominate, and they are fully cacheable.
//
// Entries are keyed by namespace plus object name. Object names alone are
// not a stable identity: a cache directory reused across runs would serve
// yesterday's corners for an object whose extents have since changed. The
// namespace must therefore encode the geometry's identity; pass
// [github.com/scenegen/scenegen/pkg/manifest.Manifest.Fingerprint] when the
// backend world was built from a manifest.
type CachedBackend struct {
	inner     Backend
	cache     cache.Cache
	namespace string
}

// NewCachedBackend wraps b with a local-bounds cache scoped to namespace.
// A nil cache disables caching.
func NewCachedBackend(b Backend, c cache.Cache, namespace string) *CachedBackend {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &CachedBackend{inner: b, cache: c, namespace: namespace}
}

// LocalBounds returns the cached corner set for name, querying the wrapped
// backend on a miss. Cache failures degrade to a direct backend call.
func (b *CachedBackend) LocalBounds(ctx context.Context, name string) ([]geom.Vec3, error) {
	key := "localbounds:" + b.namespace + ":" + name

	if data, ok, err := b.cache.Get(ctx, key); err == nil && ok {
		var corners []geom.Vec3
		if err := json.Unmarshal(data, &corners); err == nil && len(corners) == geom.CornerCount {
			return corners, nil
		}
		_ = b.cache.Delete(ctx, key)
	}

	corners, err := b.inner.LocalBounds(ctx, name)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(corners); err == nil {
		_ = b.cache.Set(ctx, key, data, LocalBoundsTTL)
	}
	return corners, nil
}

// WorldBounds passes through to the wrapped backend.
func (b *CachedBackend) WorldBounds(ctx context.Context, name string) ([]geom.Vec3, error) {
	return b.inner.WorldBounds(ctx, name)
}

// Pose passes through to the wrapped backend.
func (b *CachedBackend) Pose(ctx context.Context, name string) (geom.Pose, error) {
	return b.inner.Pose(ctx, name)
}

// SetPose passes through to the wrapped backend.
func (b *CachedBackend) SetPose(ctx context.Context, name string, pose geom.Pose) error {
	return b.inner.SetPose(ctx, name, pose)
}

// ToParentFrame passes through to the wrapped backend.
func (b *CachedBackend) ToParentFrame(ctx context.Context, parent string, p geom.Vec3) (geom.Vec3, error) {
	return b.inner.ToParentFrame(ctx, parent, p)
}

// Ensure CachedBackend implements Backend.
var _ Backend = (*CachedBackend)(nil)
