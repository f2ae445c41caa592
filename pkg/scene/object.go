package scene

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/scenegen/scenegen/pkg/geom"
)

// Object is a placed object inside a relation tree. It holds the relations
// to its own children (direction plus distance class) and resolves their
// poses relative to itself once it has been placed.
type Object struct {
	node
	root *Surface // set by the placement pass, not at construction
	yaw  float64

	relations []relation
}

// relation pairs a child object with the direction and distance class it is
// sampled under.
type relation struct {
	child    *Object
	dir      Direction
	distance Distance
}

// NewObject creates a relation-tree node for the named object, fetching its
// local bounding box from the backend.
func NewObject(ctx context.Context, b Backend, name string) (*Object, error) {
	bounds, err := fetchBBox(ctx, b, name)
	if err != nil {
		return nil, err
	}
	return &Object{node: newNode(name, bounds)}, nil
}

// SetYaw fixes the object's rotation about the vertical axis. The yaw is
// applied verbatim to every candidate pose; the solver does no orientation
// planning beyond it.
func (o *Object) SetYaw(yaw float64) { o.yaw = yaw }

// Yaw returns the object's fixed rotation about the vertical axis.
func (o *Object) Yaw() float64 { return o.yaw }

// Add appends child with a direction and distance class. Returns
// [ErrUnknownDirection] or [ErrUnknownDistance] for labels outside the
// closed enumerations. Children are placed in the order they were added.
func (o *Object) Add(child *Object, dir Direction, distance Distance) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, dir)
	}
	if distance != DistanceAny && distance != DistanceClose {
		return fmt.Errorf("%w: %q", ErrUnknownDistance, distance)
	}
	o.relations = append(o.relations, relation{child: child, dir: dir, distance: distance})
	return nil
}

// distanceRange computes the feasible [min, max] sampling distance for a
// child placed at rel's direction from o. The lower bound clears o's own
// bounding-box edge, the upper bound stays inside the root surface, both
// with a clearance of half the child's minimum planar dimension.
//
// Cardinal directions bound along a single axis. Diagonal directions use
// sqrt(2*min(gapA,gapB)^2) - the closest-approach heuristic the scene
// corpus was generated with, kept verbatim even though it is not exact for
// non-square footprints.
func (o *Object) distanceRange(ctx context.Context, rel relation) (minDist, maxDist float64, err error) {
	root := o.root
	pose, ok := root.PoseOf(o.name)
	if !ok {
		return 0, 0, fmt.Errorf("object %q resolved before its parent %q", rel.child.name, o.name)
	}
	x, y := pose.Position.X(), pose.Position.Y()

	selfBB, _ := root.BoundsOf(o.name)

	rootCorners, err := root.backend.WorldBounds(ctx, root.name)
	if err != nil {
		return 0, 0, backendErr("world bounds of "+root.name, err)
	}
	rootBB, err := geom.NewBBox(rootCorners)
	if err != nil {
		return 0, 0, err
	}

	clearance := rel.child.minPlanarDim() / 2

	diag := func(a, b float64) float64 {
		m := min(a, b)
		return math.Sqrt(2 * m * m)
	}

	switch rel.dir {
	case DirectionBack:
		minDist = x - selfBB.XMin() + clearance
		maxDist = x - rootBB.XMin() - clearance
	case DirectionRightBack:
		minDist = diag(x-selfBB.XMin(), selfBB.YMax()-y) + clearance
		maxDist = diag(x-rootBB.XMin(), rootBB.YMax()-y) - clearance
	case DirectionRight:
		minDist = selfBB.YMax() - y + clearance
		maxDist = rootBB.YMax() - y - clearance
	case DirectionRightFront:
		minDist = diag(selfBB.XMax()-x, selfBB.YMax()-y) + clearance
		maxDist = diag(rootBB.XMax()-x, rootBB.YMax()-y) - clearance
	case DirectionLeftFront:
		minDist = diag(selfBB.XMax()-x, y-selfBB.YMin()) + clearance
		maxDist = diag(rootBB.XMax()-x, y-rootBB.YMin()) - clearance
	case DirectionLeft:
		minDist = y - selfBB.YMin() + clearance
		maxDist = y - rootBB.YMin() - clearance
	case DirectionLeftBack:
		minDist = diag(x-selfBB.XMin(), y-selfBB.YMin()) + clearance
		maxDist = diag(x-rootBB.XMin(), y-rootBB.YMin()) - clearance
	case DirectionFront:
		minDist = selfBB.XMax() - x + clearance
		maxDist = rootBB.XMax() - x - clearance
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownDirection, rel.dir)
	}

	if rel.distance == DistanceClose {
		// Two successive midpoints toward the lower bound. The two-step form
		// is the contract; a single 3/4 interpolation differs in rounding.
		maxDist = ((maxDist+minDist)/2 + minDist) / 2
	}

	return minDist, maxDist, nil
}

// placeChildren resolves every child relation of an already-placed object:
// sample an angle around the relation's direction and a uniform distance
// within the feasible range, convert the polar offset into surface-local
// coordinates, and run the shared accept path against the root surface.
// Recurses into each child after acceptance.
func (o *Object) placeChildren(ctx context.Context, rng *rand.Rand) error {
	for _, rel := range o.relations {
		rel.child.root = o.root

		pose, ok := o.root.PoseOf(o.name)
		if !ok {
			return fmt.Errorf("object %q resolved before its parent %q", rel.child.name, o.name)
		}
		selfX, selfY := pose.Position.X(), pose.Position.Y()

		rootPose, err := o.root.backend.Pose(ctx, o.root.name)
		if err != nil {
			return backendErr("pose of "+o.root.name, err)
		}
		rootX, rootY := rootPose.Position.X(), rootPose.Position.Y()

		minDist, maxDist, err := o.distanceRange(ctx, rel)
		if err != nil {
			return err
		}

		angle := rel.dir.Angle()
		sample := func() (float64, float64) {
			phi := normalizeAngle(rng.NormFloat64()*DirectionSigma + angle)
			dist := minDist + rng.Float64()*(maxDist-minDist)
			return selfX - rootX + math.Sin(phi)*dist, selfY - rootY + math.Cos(phi)*dist
		}

		if err := o.root.tryPlace(ctx, rel.child, sample); err != nil {
			return err
		}
		if err := rel.child.placeChildren(ctx, rng); err != nil {
			return err
		}
	}
	return nil
}
