// Package geom provides the small geometry vocabulary shared by the scene
// placement packages: 3D vectors, z-axis quaternions, poses, and axis-aligned
// bounding boxes built from corner point sets.
//
// Values marshal to the flat JSON array forms used by the scene record format
// (positions as [x,y,z], orientations as [w,x,y,z], bounding boxes as eight
// corner points), so records round-trip byte-compatibly with existing corpora.
package geom

import "math"

// Vec3 is a point or offset in 3D space. It marshals as a JSON array [x,y,z].
type Vec3 [3]float64

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Quat is a unit quaternion in w-x-y-z component order.
// It marshals as a JSON array [w,x,y,z].
type Quat [4]float64

// Identity is the no-rotation quaternion.
var Identity = Quat{1, 0, 0, 0}

// AboutZ returns the quaternion for a rotation of angle radians about the
// vertical axis. This is the only rotation the placement solver produces:
// objects keep a fixed per-object yaw and stay upright on their surface.
func AboutZ(angle float64) Quat {
	return Quat{math.Cos(angle / 2), 0, 0, math.Sin(angle / 2)}
}

// Yaw returns the rotation about the vertical axis encoded by q.
// It is the inverse of [AboutZ] for quaternions produced by it.
func (q Quat) Yaw() float64 {
	return 2 * math.Atan2(q[3], q[0])
}

// Pose is a position plus orientation, as set on and reported by a scene
// backend.
type Pose struct {
	Position    Vec3
	Orientation Quat
}

// RotateZ rotates the planar components of v by angle radians about the
// vertical axis, leaving z untouched.
func RotateZ(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		cos*v[0] - sin*v[1],
		sin*v[0] + cos*v[1],
		v[2],
	}
}
