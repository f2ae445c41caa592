package gen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/scenegen/scenegen/pkg/corpus"
	"github.com/scenegen/scenegen/pkg/manifest"
	"github.com/scenegen/scenegen/pkg/record"
	"github.com/scenegen/scenegen/pkg/scene"
)

const deskManifest = `
[surface]
name = "table"
size = [1.6, 0.8, 0.75]

[[object]]
name   = "monitor1"
size   = [0.45, 0.2, 0.4]
anchor = "north"
yaw_sigma = 0.196

[[object]]
name      = "keyboard1"
size      = [0.45, 0.15, 0.03]
parent    = "monitor1"
direction = "front"
distance  = "close"
`

// impossibleManifest asks for two boxes nearly as large as the surface, so
// every placement pass exhausts its candidate budget.
const impossibleManifest = `
[surface]
name = "table"
size = [2, 2, 0.5]

[[object]]
name = "a"
size = [0.9, 0.9, 0.2]

[[object]]
name = "b"
size = [0.9, 0.9, 0.2]
`

func runFixture(t *testing.T, manifestTOML string) (*Runner, *manifest.Manifest, *corpus.DirStore) {
	t.Helper()

	m, err := manifest.Parse([]byte(manifestTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	world, err := m.World()
	if err != nil {
		t.Fatalf("World() error = %v", err)
	}
	store, err := corpus.NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(world, store, nil), m, store
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	runner, m, store := runFixture(t, deskManifest)

	result, err := runner.Execute(ctx, Options{Manifest: m, Count: 5})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(result.Scenes) != 5 {
		t.Fatalf("generated %d scenes, want 5", len(result.Scenes))
	}
	if result.Attempts < 5 {
		t.Errorf("Attempts = %d, want >= scene count", result.Attempts)
	}
	for i, name := range result.Scenes {
		if want := "scene" + string(rune('1'+i)); name != want {
			t.Errorf("Scenes[%d] = %q, want %q", i, name, want)
		}
	}

	keys, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 5 {
		t.Fatalf("store holds %d scenes, want 5", len(keys))
	}

	s, err := store.Load(ctx, "scene1")
	if err != nil {
		t.Fatalf("Load(scene1) error = %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("stored scene invalid: %v", err)
	}
	if len(s.Objects) != 2 {
		t.Errorf("scene1 has %d objects, want 2", len(s.Objects))
	}
}

func TestExecuteDeterministic(t *testing.T) {
	ctx := context.Background()

	run := func() *record.Scene {
		runner, m, store := runFixture(t, deskManifest)
		if _, err := runner.Execute(ctx, Options{Manifest: m, Count: 3, Seed: 7}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		s, err := store.Load(ctx, "scene3")
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	a, b := run(), run()
	for _, name := range a.Objects {
		if a.Positions[name] != b.Positions[name] {
			t.Errorf("position of %s differs across same-seed runs: %v vs %v",
				name, a.Positions[name], b.Positions[name])
		}
		if a.Orientations[name] != b.Orientations[name] {
			t.Errorf("orientation of %s differs across same-seed runs", name)
		}
	}
}

func TestExecuteSceneVariety(t *testing.T) {
	ctx := context.Background()
	runner, m, store := runFixture(t, deskManifest)

	if _, err := runner.Execute(ctx, Options{Manifest: m, Count: 2}); err != nil {
		t.Fatal(err)
	}

	s1, err := store.Load(ctx, "scene1")
	if err != nil {
		t.Fatal(err)
	}
	s2, err := store.Load(ctx, "scene2")
	if err != nil {
		t.Fatal(err)
	}
	if s1.Positions["monitor1"] == s2.Positions["monitor1"] {
		t.Error("consecutive scenes placed the monitor identically")
	}
	if s1.ID == s2.ID {
		t.Error("scenes share an id")
	}
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	ctx := context.Background()
	runner, m, _ := runFixture(t, impossibleManifest)

	result, err := runner.Execute(ctx, Options{Manifest: m, Count: 1, SceneAttempts: 3})
	if !errors.Is(err, scene.ErrPlacementFailed) {
		t.Fatalf("Execute() error = %v, want ErrPlacementFailed", err)
	}
	if result.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", result.Attempts)
	}
	if len(result.Scenes) != 0 {
		t.Errorf("Scenes = %v, want none", result.Scenes)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, m, _ := runFixture(t, deskManifest)
	if _, err := runner.Execute(ctx, Options{Manifest: m, Count: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	m := &manifest.Manifest{}

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"missing manifest", Options{Count: 1}, "manifest"},
		{"zero count", Options{Manifest: m}, "count"},
		{"negative count", Options{Manifest: m, Count: -2}, "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}

	opts := Options{Manifest: m, Count: 1}
	if err := opts.validate(); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if opts.Seed != DefaultSeed || opts.SceneAttempts != DefaultSceneAttempts || opts.NamePrefix != "scene" {
		t.Errorf("defaults not applied: %+v", opts)
	}
}

func TestNamePrefix(t *testing.T) {
	ctx := context.Background()
	runner, m, store := runFixture(t, deskManifest)

	result, err := runner.Execute(ctx, Options{Manifest: m, Count: 1, NamePrefix: "desk"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Scenes[0] != "desk1" {
		t.Errorf("scene name = %q, want desk1", result.Scenes[0])
	}
	if _, err := store.Load(ctx, "desk1"); err != nil {
		t.Errorf("Load(desk1) error = %v", err)
	}
}
