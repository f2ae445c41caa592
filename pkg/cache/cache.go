// Package cache provides a pluggable byte cache for expensive backend
// queries.
//
// Scene generation asks the simulator for the same pose-invariant geometry
// (local bounding volumes) on every scene attempt. A cache in front of the
// backend turns those repeat round-trips into local lookups. Three
// implementations are provided:
//
//   - [NullCache]: caching disabled (the default)
//   - [FileCache]: persistent cache directory for single-machine runs
//   - [RedisCache]: shared cache for fleet-scale generation runs
//
// Keys are opaque strings; callers are responsible for making them specific
// enough that a cache surviving across runs never aliases two different
// values (see [Hash]).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss;
	// misses are not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// Hash returns the hex SHA-256 digest of data. It is the fingerprint
// primitive for cache identity: [FileCache] hashes keys into filenames, and
// manifests hash their geometry into the cache namespace so that changed
// object extents never resolve to an old entry.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
