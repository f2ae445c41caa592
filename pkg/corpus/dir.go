package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scenegen/scenegen/pkg/record"
)

// DirStore stores each scene as a JSON file <key>.json in one directory.
// This is the corpus layout the downstream scene loaders read.
type DirStore struct {
	dir string
}

// NewDirStore creates a directory-backed store, creating the directory if
// needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirStore{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (d *DirStore) Dir() string { return d.dir }

// Save writes the scene to <key>.json.
func (d *DirStore) Save(ctx context.Context, s *record.Scene) error {
	k := key(s)
	if k == "" {
		return fmt.Errorf("scene has neither name nor id")
	}
	return s.Export(d.path(k))
}

// List returns the keys of all stored scenes in lexical order.
func (d *DirStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

// Load reads the scene stored under key.
func (d *DirStore) Load(ctx context.Context, k string) (*record.Scene, error) {
	s, err := record.Import(d.path(k))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrSceneNotFound, k)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Close does nothing for a directory store.
func (d *DirStore) Close() error { return nil }

func (d *DirStore) path(k string) string {
	return filepath.Join(d.dir, k+".json")
}

// Ensure DirStore implements Store.
var _ Store = (*DirStore)(nil)
