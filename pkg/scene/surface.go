package scene

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/scenegen/scenegen/pkg/geom"
)

// Surface is the root of a relation tree: a supporting plane (desk, shelf)
// that all descendant objects are ultimately placed on. The surface owns the
// collision bookkeeping for one placement pass - the ordered list of placed
// objects and their poses and world bounding boxes.
//
// A Surface is good for exactly one call to [Surface.PlaceObjects]; build a
// fresh tree for every scene attempt.
type Surface struct {
	node
	backend Backend

	children []anchored

	placed      []string
	poses       map[string]geom.Pose
	worldBounds map[string]geom.BBox
	corners     map[string][]geom.Vec3
}

// anchored pairs a direct child with the anchor it is sampled around.
type anchored struct {
	child  *Object
	anchor Anchor
}

// NewSurface creates the root node for the named supporting plane, fetching
// its local bounding box from the backend.
func NewSurface(ctx context.Context, b Backend, name string) (*Surface, error) {
	bounds, err := fetchBBox(ctx, b, name)
	if err != nil {
		return nil, err
	}
	return &Surface{
		node:        newNode(name, bounds),
		backend:     b,
		poses:       make(map[string]geom.Pose),
		worldBounds: make(map[string]geom.BBox),
		corners:     make(map[string][]geom.Vec3),
	}, nil
}

// Add appends obj as a direct child sampled around the given anchor.
// Returns [ErrUnknownAnchor] if the anchor is not one of the nine grid
// points. Children are placed in the order they were added.
func (s *Surface) Add(obj *Object, anchor Anchor) error {
	if !anchor.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAnchor, anchor)
	}
	s.children = append(s.children, anchored{child: obj, anchor: anchor})
	return nil
}

// withinBounds reports whether the candidate's footprint, shrunk to its
// minimum planar dimension, fits strictly inside the surface centered at
// (x, y). This is a conservative inscribed-margin test, not exact polygon
// containment: it assumes roughly square footprints.
func (s *Surface) withinBounds(candidate *Object, x, y float64) bool {
	margin := candidate.minPlanarDim()
	return s.bounds.XMin()+margin < x && x < s.bounds.XMax()-margin &&
		s.bounds.YMin()+margin < y && y < s.bounds.YMax()-margin
}

// inCollision reports whether bbox overlaps any previously placed object's
// world bounding box in the x/y plane. Linear scan, order-independent.
func (s *Surface) inCollision(bbox geom.BBox) bool {
	for _, other := range s.worldBounds {
		if bbox.Overlaps(other) {
			return true
		}
	}
	return false
}

// recordPlacement commits one accepted placement to the surface bookkeeping.
func (s *Surface) recordPlacement(name string, pose geom.Pose, bbox geom.BBox, corners []geom.Vec3) {
	s.placed = append(s.placed, name)
	s.poses[name] = pose
	s.worldBounds[name] = bbox
	s.corners[name] = corners
}

// PlaceObjects resolves a pose for every node in the tree, depth-first and
// pre-order: each direct child is placed by Gaussian sampling around its
// anchor, then its own children are resolved relative to it before the next
// sibling is attempted.
//
// On success the surface bookkeeping holds every placed object. On failure
// it is left partially populated and unusable; discard the tree and retry
// with fresh randomness. Returns a [PlacementError] when sampling exhausts
// [MaxAttempts] for any object, or a backend error wrapped in [ErrBackend].
func (s *Surface) PlaceObjects(ctx context.Context, rng *rand.Rand) error {
	if len(s.placed) > 0 {
		return fmt.Errorf("surface %q already holds placed objects; build a fresh tree", s.name)
	}

	for _, a := range s.children {
		a.child.root = s

		ax, ay := s.anchorPoint(a.anchor)
		sample := func() (float64, float64) {
			return rng.NormFloat64()*s.xSigma + ax, rng.NormFloat64()*s.ySigma + ay
		}

		if err := s.tryPlace(ctx, a.child, sample); err != nil {
			return err
		}
		if err := a.child.placeChildren(ctx, rng); err != nil {
			return err
		}
	}
	return nil
}

// Placed returns the names of all placed objects in placement order.
func (s *Surface) Placed() []string {
	return slices.Clone(s.placed)
}

// PoseOf returns the recorded pose of a placed object.
func (s *Surface) PoseOf(name string) (geom.Pose, bool) {
	p, ok := s.poses[name]
	return p, ok
}

// BoundsOf returns the recorded world bounding box of a placed object.
func (s *Surface) BoundsOf(name string) (geom.BBox, bool) {
	b, ok := s.worldBounds[name]
	return b, ok
}

// CornersOf returns the raw eight-corner world bounding volume of a placed
// object, as reported by the backend when the placement was accepted.
func (s *Surface) CornersOf(name string) ([]geom.Vec3, bool) {
	c, ok := s.corners[name]
	return c, ok
}
