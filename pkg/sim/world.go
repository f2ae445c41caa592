// Package sim provides an in-memory scene backend for tests and offline
// generation.
//
// World implements [scene.Backend] with simple box geometry: every object is
// an axis-aligned box in its own frame, and applying a pose rotates the box
// about the vertical axis and translates it. No physics runs - the placement
// solver is responsible for keeping arrangements plausible.
//
// Surfaces are registered at the world origin with identity orientation, so
// the surface-local frame the solver samples in coincides with the world
// frame. That is the frame convention of the reference corpus: scene records
// stay portable because a loader re-anchors them on any real surface pose.
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/scenegen/scenegen/pkg/geom"
	"github.com/scenegen/scenegen/pkg/scene"
)

// ErrUnknownObject is returned for names never registered with the world.
var ErrUnknownObject = errors.New("unknown object")

// body is one registered object: its local corner set and current pose.
type body struct {
	local []geom.Vec3
	pose  geom.Pose
}

// World is an in-memory scene backend. It is not safe for concurrent use;
// one placement pass owns it at a time, matching the solver's model.
type World struct {
	bodies map[string]*body
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{bodies: make(map[string]*body)}
}

// AddBox registers an object as a box of the given planar extents and
// height, centered on its own origin. Extents must be positive.
func (w *World) AddBox(name string, width, depth, height float64) error {
	return w.add(name, width, depth, -height/2, height/2)
}

// AddSurface registers a supporting plane as a box whose origin sits at the
// floor: the local z range is [0, top], so the solver reads the surface
// height directly from the local bounding box.
func (w *World) AddSurface(name string, width, depth, top float64) error {
	return w.add(name, width, depth, 0, top)
}

func (w *World) add(name string, width, depth, zMin, zMax float64) error {
	if name == "" {
		return fmt.Errorf("object name must not be empty")
	}
	if width <= 0 || depth <= 0 || zMax <= zMin {
		return fmt.Errorf("object %q: extents must be positive", name)
	}
	if _, exists := w.bodies[name]; exists {
		return fmt.Errorf("object %q already registered", name)
	}
	w.bodies[name] = &body{
		local: boxCorners(width, depth, zMin, zMax),
		pose:  geom.Pose{Orientation: geom.Identity},
	}
	return nil
}

// boxCorners builds the eight corner points of a box centered in x/y.
func boxCorners(width, depth, zMin, zMax float64) []geom.Vec3 {
	hw, hd := width/2, depth/2
	corners := make([]geom.Vec3, 0, geom.CornerCount)
	for _, x := range [2]float64{-hw, hw} {
		for _, y := range [2]float64{-hd, hd} {
			for _, z := range [2]float64{zMin, zMax} {
				corners = append(corners, geom.Vec3{x, y, z})
			}
		}
	}
	return corners
}

func (w *World) lookup(name string) (*body, error) {
	b, ok := w.bodies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}
	return b, nil
}

// LocalBounds returns the object's corner set in its own frame.
func (w *World) LocalBounds(ctx context.Context, name string) ([]geom.Vec3, error) {
	b, err := w.lookup(name)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Vec3, len(b.local))
	copy(out, b.local)
	return out, nil
}

// WorldBounds returns the object's corner set under its current pose:
// each local corner rotated by the pose yaw and translated.
func (w *World) WorldBounds(ctx context.Context, name string) ([]geom.Vec3, error) {
	b, err := w.lookup(name)
	if err != nil {
		return nil, err
	}
	yaw := b.pose.Orientation.Yaw()
	out := make([]geom.Vec3, len(b.local))
	for i, c := range b.local {
		out[i] = geom.RotateZ(c, yaw).Add(b.pose.Position)
	}
	return out, nil
}

// Pose returns the object's current pose.
func (w *World) Pose(ctx context.Context, name string) (geom.Pose, error) {
	b, err := w.lookup(name)
	if err != nil {
		return geom.Pose{}, err
	}
	return b.pose, nil
}

// SetPose applies a world-frame pose to the object.
func (w *World) SetPose(ctx context.Context, name string, pose geom.Pose) error {
	b, err := w.lookup(name)
	if err != nil {
		return err
	}
	b.pose = pose
	return nil
}

// ToParentFrame resolves a point expressed in the parent's local frame into
// the world frame: rotated by the parent's yaw and offset by its position.
// For surfaces registered with [World.AddSurface] this is the identity.
func (w *World) ToParentFrame(ctx context.Context, parent string, p geom.Vec3) (geom.Vec3, error) {
	b, err := w.lookup(parent)
	if err != nil {
		return geom.Vec3{}, err
	}
	return geom.RotateZ(p, b.pose.Orientation.Yaw()).Add(b.pose.Position), nil
}

// Ensure World implements scene.Backend.
var _ scene.Backend = (*World)(nil)
