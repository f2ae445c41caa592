package scene

import (
	"context"
	"math"

	"github.com/scenegen/scenegen/pkg/geom"
)

// Placement constants carried over from the reference scene corpus. Changing
// any of these changes the sampling distribution and therefore the statistics
// of every generated corpus.
const (
	// MaxAttempts bounds the rejection-sampling loop per object. Exhausting
	// it is fatal for the whole scene attempt.
	MaxAttempts = 100

	// ZClearance lifts objects slightly above the supporting plane so the
	// simulator never reports resting contact as penetration.
	ZClearance = 0.005

	// DirectionSigma is the angular spread around a relation's direction.
	DirectionSigma = math.Pi / 16

	// ObjectScale scales an object's footprint in containment and clearance
	// margins. At 1.0 there is no shrink; it is a hook for margin tuning.
	ObjectScale = 1.00
)

// tryPlace runs the bounded rejection loop for one object. sample draws a
// candidate planar position in the surface's local frame; tryPlace validates
// containment, applies the pose through the backend, checks the resulting
// world bounding box against everything already placed, and records the
// object on success.
//
// Candidates rejected by containment never touch the backend; candidates
// rejected by collision leave the object at the rejected pose until a later
// candidate or a later scene attempt moves it, matching the reference
// workflow.
func (s *Surface) tryPlace(ctx context.Context, child *Object, sample func() (x, y float64)) error {
	z := s.bounds.ZMax() + child.bounds.Height()/2 + ZClearance

	for i := 0; i < MaxAttempts; i++ {
		x, y := sample()
		if !s.withinBounds(child, x, y) {
			continue
		}

		pos, err := s.backend.ToParentFrame(ctx, s.name, geom.Vec3{x, y, z})
		if err != nil {
			return backendErr("transform for "+child.name, err)
		}
		pose := geom.Pose{Position: pos, Orientation: geom.AboutZ(child.yaw)}
		if err := s.backend.SetPose(ctx, child.name, pose); err != nil {
			return backendErr("set pose of "+child.name, err)
		}

		corners, err := s.backend.WorldBounds(ctx, child.name)
		if err != nil {
			return backendErr("world bounds of "+child.name, err)
		}
		bbox, err := geom.NewBBox(corners)
		if err != nil {
			return err
		}

		if s.inCollision(bbox) {
			continue
		}

		s.recordPlacement(child.name, pose, bbox, corners)
		return nil
	}

	return &PlacementError{Object: child.name}
}

// normalizeAngle wraps phi into [0, 2π). Sampled angles deviate from their
// direction mean by a few sigma at most, so a single wrap suffices.
func normalizeAngle(phi float64) float64 {
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi > 2*math.Pi {
		phi -= 2 * math.Pi
	}
	return phi
}
