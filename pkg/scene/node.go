package scene

import "github.com/scenegen/scenegen/pkg/geom"

// node holds the geometry every tree member shares: the object's name, its
// local bounding box, the 3x3 anchor grid over the footprint, and the
// Gaussian spread used when sampling around an anchor.
type node struct {
	name   string
	bounds geom.BBox

	// cellX/cellY are one sixth of the footprint extents; anchors sit at
	// {1,3,5} cells from the min corner.
	cellX, cellY float64

	// xSigma/ySigma are the squared cell sizes, passed directly as the
	// Gaussian spread. This is the reference contract: roughly 68% of
	// samples land within one squared-cell unit of the target anchor.
	xSigma, ySigma float64
}

func newNode(name string, bounds geom.BBox) node {
	cx := bounds.Width() / 6
	cy := bounds.Depth() / 6
	return node{
		name:   name,
		bounds: bounds,
		cellX:  cx,
		cellY:  cy,
		xSigma: cx * cx,
		ySigma: cy * cy,
	}
}

// Name returns the backend object name this node stands for.
func (n *node) Name() string { return n.name }

// LocalBounds returns the node's bounding box in its own frame.
func (n *node) LocalBounds() geom.BBox { return n.bounds }

// anchorPoint returns the planar coordinates of anchor a on the node's local
// footprint. The anchor must be valid; [Surface.Add] enforces that.
func (n *node) anchorPoint(a Anchor) (x, y float64) {
	cell := anchorGrid[a]
	return n.bounds.XMin() + cell[0]*n.cellX, n.bounds.YMin() + cell[1]*n.cellY
}

// minPlanarDim returns the smaller of the node's footprint extents, scaled
// by [ObjectScale]. Used as the containment margin and, halved, as the
// clearance in distance-range bounds.
func (n *node) minPlanarDim() float64 {
	return min(n.bounds.Width(), n.bounds.Depth()) * ObjectScale
}
