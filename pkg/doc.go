// Package pkg provides the core libraries for scene generation.
//
// # Overview
//
// Scenegen samples collision-free object arrangements on supporting surfaces
// from qualitative descriptions (anchors, directions, distance classes),
// producing labeled scene records for perception training. The pkg directory
// is organized around the generation data flow:
//
//	TOML manifest
//	     ↓
//	[manifest] package (parse + validate the scene family)
//	     ↓
//	[scene] package (relation tree + rejection-sampling solver)
//	     ↓
//	[record] package (persisted scene format)
//	     ↓
//	[corpus] package (directory or MongoDB corpus, HTTP serving)
//
// # Main Packages
//
// [geom] - Shared geometry vocabulary: vectors, z-axis quaternions, poses,
// and axis-aligned bounding boxes built from corner point sets.
//
// [scene] - The placement solver. Relation trees are built from a [scene.Backend]
// (the simulator owning object geometry), and one placement pass resolves a
// collision-free pose for every node. [scene.CachedBackend] caches
// pose-invariant geometry lookups in front of remote simulators.
//
// [sim] - In-memory box-geometry backend for tests and offline generation.
//
// [manifest] - TOML scene descriptions: the surface, the objects, and the
// qualitative relations between them.
//
// [gen] - The generation runner: repeated placement passes with whole-scene
// retries until the requested corpus size is reached.
//
// [record] - The persisted scene record format (JSON keys compatible with
// existing corpora) and file import/export.
//
// [corpus] - Corpus stores (directory, MongoDB) and the HTTP handler that
// serves them to downstream tools.
//
// [cache] - Pluggable byte cache (file, Redis, null) backing
// [scene.CachedBackend].
//
// [treeviz] - Graphviz rendering of relation trees for manifest debugging.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Quick Start
//
// Generate a small corpus from a manifest:
//
//	m, _ := manifest.Load("desk.toml")
//	world, _ := m.World()
//	store, _ := corpus.NewDirStore("corpus/")
//
//	runner := gen.NewRunner(world, store, logger)
//	result, _ := runner.Execute(ctx, gen.Options{Manifest: m, Count: 100, Seed: 42})
//
// Or drive the solver directly:
//
//	surf, _ := scene.NewSurface(ctx, world, "table")
//	cup, _ := scene.NewObject(ctx, world, "cup")
//	_ = surf.Add(cup, scene.AnchorNorthWest)
//	_ = surf.PlaceObjects(ctx, rng)
//	rec := record.FromSurface(surf)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/scene/...    # Solver only
//
// [geom]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/geom
// [scene]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/scene
// [sim]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/sim
// [manifest]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/manifest
// [gen]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/gen
// [record]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/record
// [corpus]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/corpus
// [cache]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/cache
// [treeviz]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/treeviz
// [buildinfo]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/buildinfo
// [scene.Backend]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/scene#Backend
// [scene.CachedBackend]: https://pkg.go.dev/github.com/scenegen/scenegen/pkg/scene#CachedBackend
package pkg
