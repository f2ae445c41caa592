package scene

import (
	"context"

	"github.com/scenegen/scenegen/pkg/geom"
)

// Backend is the scene simulator that owns object geometry and applies
// poses. The placement solver treats it as a synchronous collaborator: every
// call blocks until the simulator answers, and any failure surfaces as
// [ErrBackend] without retries.
//
// Implementations must resolve objects by the names used when building the
// relation tree. [github.com/scenegen/scenegen/pkg/sim.World] provides an
// in-memory implementation for tests and offline generation.
type Backend interface {
	// LocalBounds returns the eight corner points of the object's bounding
	// volume in the object's own frame.
	LocalBounds(ctx context.Context, name string) ([]geom.Vec3, error)

	// WorldBounds returns the eight corner points of the object's bounding
	// volume in the world frame, reflecting the last applied pose.
	WorldBounds(ctx context.Context, name string) ([]geom.Vec3, error)

	// Pose returns the object's current pose.
	Pose(ctx context.Context, name string) (geom.Pose, error)

	// SetPose applies a pose to the object.
	SetPose(ctx context.Context, name string, pose geom.Pose) error

	// ToParentFrame converts a point expressed in the named parent's local
	// frame into the pose position understood by SetPose. The placement
	// solver samples candidates in surface-local coordinates and runs every
	// accepted candidate through this conversion.
	ToParentFrame(ctx context.Context, parent string, p geom.Vec3) (geom.Vec3, error)
}

// fetchBBox retrieves an object's local bounding volume from the backend and
// reduces it to axis-aligned extents.
func fetchBBox(ctx context.Context, b Backend, name string) (geom.BBox, error) {
	corners, err := b.LocalBounds(ctx, name)
	if err != nil {
		return geom.BBox{}, backendErr("local bounds of "+name, err)
	}
	bbox, err := geom.NewBBox(corners)
	if err != nil {
		return geom.BBox{}, err
	}
	return bbox, nil
}
