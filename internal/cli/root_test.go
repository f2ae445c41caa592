package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetVersion(t *testing.T) {
	// Test that SetVersion updates the package-level variables
	SetVersion("1.0.0", "abc123", "2024-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

const testManifest = `
[surface]
name = "table"
size = [1.6, 0.8, 0.75]

[[object]]
name   = "monitor1"
size   = [0.45, 0.2, 0.4]
anchor = "north"

[[object]]
name      = "keyboard1"
size      = [0.45, 0.15, 0.03]
parent    = "monitor1"
direction = "front"
distance  = "close"
`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "desk.toml")
	if err := os.WriteFile(path, []byte(testManifest), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunGenerate(t *testing.T) {
	ctx := t.Context()
	out := filepath.Join(t.TempDir(), "corpus")

	opts := generateOpts{count: 2, out: out}
	if err := runGenerate(ctx, &opts, writeManifest(t)); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	for _, name := range []string{"scene1.json", "scene2.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing corpus file %s: %v", name, err)
		}
	}
}

func TestRunGenerateWithFileCache(t *testing.T) {
	ctx := t.Context()
	dir := t.TempDir()

	opts := generateOpts{
		count:    1,
		out:      filepath.Join(dir, "corpus"),
		cacheDir: filepath.Join(dir, "cache"),
	}
	if err := runGenerate(ctx, &opts, writeManifest(t)); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
}

func TestRunGenerateBadManifest(t *testing.T) {
	ctx := t.Context()

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(`[surface]`), 0644); err != nil {
		t.Fatal(err)
	}

	opts := generateOpts{count: 1, out: t.TempDir()}
	if err := runGenerate(ctx, &opts, path); err == nil {
		t.Error("runGenerate() should fail on an invalid manifest")
	}
}

func TestRunTreeToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")

	opts := treeOpts{output: out}
	if err := runTree(&opts, writeManifest(t)); err != nil {
		t.Fatalf("runTree() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("runTree() wrote an empty file")
	}
}
