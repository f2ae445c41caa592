package geom

import (
	"errors"
	"fmt"
)

// CornerCount is the number of corner points a bounding volume must provide.
const CornerCount = 8

// ErrInvalidGeometry is returned by [NewBBox] when the corner set does not
// contain exactly [CornerCount] points. Malformed geometry is a caller error
// and is never repaired.
var ErrInvalidGeometry = errors.New("invalid geometry")

// BBox is an immutable axis-aligned bounding box derived from the eight
// corner points of an object's bounding volume. The corners may come from an
// oriented volume; BBox keeps only the per-axis extents.
//
// Collision checks between placed objects use the 2D overlap test ([Overlaps])
// and ignore z: placement assumes a single supporting plane.
type BBox struct {
	xMin, xMax float64
	yMin, yMax float64
	zMin, zMax float64
}

// NewBBox builds a bounding box from an unordered set of exactly eight corner
// points. Returns [ErrInvalidGeometry] for any other corner count.
func NewBBox(corners []Vec3) (BBox, error) {
	if len(corners) != CornerCount {
		return BBox{}, fmt.Errorf("%w: got %d corner points, want %d", ErrInvalidGeometry, len(corners), CornerCount)
	}
	b := BBox{
		xMin: corners[0][0], xMax: corners[0][0],
		yMin: corners[0][1], yMax: corners[0][1],
		zMin: corners[0][2], zMax: corners[0][2],
	}
	for _, c := range corners[1:] {
		b.xMin = min(b.xMin, c[0])
		b.xMax = max(b.xMax, c[0])
		b.yMin = min(b.yMin, c[1])
		b.yMax = max(b.yMax, c[1])
		b.zMin = min(b.zMin, c[2])
		b.zMax = max(b.zMax, c[2])
	}
	return b, nil
}

// XMin returns the lower x bound.
func (b BBox) XMin() float64 { return b.xMin }

// XMax returns the upper x bound.
func (b BBox) XMax() float64 { return b.xMax }

// YMin returns the lower y bound.
func (b BBox) YMin() float64 { return b.yMin }

// YMax returns the upper y bound.
func (b BBox) YMax() float64 { return b.yMax }

// ZMin returns the lower z bound.
func (b BBox) ZMin() float64 { return b.zMin }

// ZMax returns the upper z bound.
func (b BBox) ZMax() float64 { return b.zMax }

// Width returns the x extent.
func (b BBox) Width() float64 { return b.xMax - b.xMin }

// Depth returns the y extent.
func (b BBox) Depth() float64 { return b.yMax - b.yMin }

// Height returns the z extent.
func (b BBox) Height() float64 { return b.zMax - b.zMin }

// Overlaps reports whether b and o overlap in the x/y plane. The test is
// symmetric and treats boxes that merely touch as overlapping.
func (b BBox) Overlaps(o BBox) bool {
	return b.xMax >= o.xMin && b.xMin <= o.xMax &&
		b.yMax >= o.yMin && b.yMin <= o.yMax
}
