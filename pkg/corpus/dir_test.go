package corpus

import (
	"context"
	"errors"
	"testing"

	"github.com/scenegen/scenegen/pkg/geom"
	"github.com/scenegen/scenegen/pkg/record"
)

func testScene(id, name string) *record.Scene {
	return &record.Scene{
		ID:      id,
		Name:    name,
		Objects: []string{"cup"},
		Positions: map[string]geom.Vec3{
			"cup": {0.1, 0.2, 0.6},
		},
		Orientations: map[string]geom.Quat{
			"cup": geom.Identity,
		},
		Bounds: map[string][]geom.Vec3{
			"cup": make([]geom.Vec3, geom.CornerCount),
		},
	}
}

func TestDirStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore() error = %v", err)
	}
	defer store.Close()

	want := testScene("abc-123", "scene1")
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, "scene1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name {
		t.Errorf("Load() = %s/%s, want %s/%s", got.ID, got.Name, want.ID, want.Name)
	}
	if got.Positions["cup"] != want.Positions["cup"] {
		t.Errorf("position = %v, want %v", got.Positions["cup"], want.Positions["cup"])
	}
}

func TestDirStoreKeyFallsBackToID(t *testing.T) {
	ctx := context.Background()
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(ctx, testScene("abc-123", "")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := store.Load(ctx, "abc-123"); err != nil {
		t.Errorf("Load() by id error = %v", err)
	}

	if err := store.Save(ctx, testScene("", "")); err == nil {
		t.Error("Save() without name or id should fail")
	}
}

func TestDirStoreList(t *testing.T) {
	ctx := context.Background()
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	keys, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("List() on empty store = %v", keys)
	}

	for _, name := range []string{"sceneB", "sceneA", "sceneC"} {
		if err := store.Save(ctx, testScene("id-"+name, name)); err != nil {
			t.Fatal(err)
		}
	}

	keys, err = store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"sceneA", "sceneB", "sceneC"}
	if len(keys) != len(want) {
		t.Fatalf("List() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestDirStoreLoadMissing(t *testing.T) {
	ctx := context.Background()
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(ctx, "ghost"); !errors.Is(err, ErrSceneNotFound) {
		t.Errorf("Load(ghost) error = %v, want ErrSceneNotFound", err)
	}
}
