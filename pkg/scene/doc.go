// Package scene implements constraint-based placement of objects on
// supporting surfaces using qualitative spatial relations.
//
// # Overview
//
// Scenegen synthesizes labeled training scenes for robot perception by
// arranging small objects (monitors, keyboards, cups) on a supporting plane
// such as a desk. Callers describe a scene as a tree of relations - "monitor
// at the table's north anchor", "keyboard in front of the monitor, close" -
// and the solver turns those relations into concrete collision-free 3D poses
// by rejection sampling.
//
// # Basic Usage
//
// Build a tree rooted at a [Surface], attach [Object] nodes with anchors or
// directions, then run one placement pass:
//
//	table, _ := scene.NewSurface(ctx, backend, "table")
//	monitor, _ := scene.NewObject(ctx, backend, "monitor1")
//	keyboard, _ := scene.NewObject(ctx, backend, "keyboard1")
//
//	table.Add(monitor, scene.AnchorNorth)
//	monitor.Add(keyboard, scene.DirectionFront, scene.DistanceClose)
//
//	if err := table.PlaceObjects(ctx, rng); err != nil { ... }
//	rec := record.FromSurface(table)
//
// The tree is resolved depth-first, parent before child, because a child's
// valid sampling region is defined relative to its already-placed parent.
//
// # Sampling Model
//
// Direct children of a surface are drawn from a Gaussian centered on one of
// nine named anchor points (a 3x3 grid over the surface footprint). Children
// of objects are drawn in polar form: an angle around one of eight compass
// directions and a uniform distance within the range that keeps the child
// between its parent's bounding box edge and the surface edge. Each candidate
// must pass a containment test against the surface and a 2D bounding-box
// collision scan against everything already placed; after [MaxAttempts]
// rejected candidates the pass fails with a [PlacementError] and the caller
// discards the whole tree.
//
// # Geometry Source
//
// All geometry comes from a [Backend] - the simulator that owns object meshes,
// applies poses, and reports bounding boxes. The backend is passed explicitly
// to constructors and placement calls; the package keeps no global state.
// Randomness is likewise explicit (*rand.Rand) so tests can seed it.
//
// # Concurrency
//
// A Surface's placement bookkeeping is mutated only by the depth-first
// traversal of one placement pass. Surfaces are not safe for concurrent
// passes; build a fresh tree per scene attempt.
package scene
