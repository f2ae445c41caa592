// Package corpus persists and serves generated scene records.
//
// A corpus is the output of a generation run: one record per successfully
// placed scene. Two stores are provided - [DirStore] writes JSON files (the
// reference corpus layout consumed by existing scene loaders) and
// [MongoStore] writes to MongoDB for fleet-scale runs. [Handler] exposes
// any store over HTTP for downstream training and visualization tools.
package corpus

import (
	"context"
	"errors"

	"github.com/scenegen/scenegen/pkg/record"
)

// ErrSceneNotFound is returned by [Store.Load] when no scene matches the
// given name or ID.
var ErrSceneNotFound = errors.New("scene not found")

// Store persists scene records. Implementations must be safe for concurrent
// readers; a single generation run is the only writer.
type Store interface {
	// Save persists one scene record. Records are keyed by Name, falling
	// back to ID when unnamed.
	Save(ctx context.Context, s *record.Scene) error

	// List returns the keys of all stored scenes in lexical order.
	List(ctx context.Context) ([]string, error)

	// Load retrieves a scene by key. Returns [ErrSceneNotFound] when the
	// key is unknown.
	Load(ctx context.Context, key string) (*record.Scene, error)

	// Close releases any underlying resources.
	Close() error
}

// key returns the storage key for a scene.
func key(s *record.Scene) string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}
