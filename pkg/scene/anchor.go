package scene

import "fmt"

// Anchor names one of nine reference points on a surface footprint: the
// eight compass points plus the center. Anchors are the Gaussian means used
// when sampling positions for a surface's direct children.
type Anchor string

// The nine anchors of the 3x3 grid.
const (
	AnchorNorth     Anchor = "north"
	AnchorNorthEast Anchor = "north_east"
	AnchorEast      Anchor = "east"
	AnchorSouthEast Anchor = "south_east"
	AnchorSouth     Anchor = "south"
	AnchorSouthWest Anchor = "south_west"
	AnchorWest      Anchor = "west"
	AnchorNorthWest Anchor = "north_west"
	AnchorCenter    Anchor = "center"
)

// anchorGrid maps each anchor to its grid cell, expressed in sixths of the
// surface extent from the min corner. Grid coordinates follow the reference
// corpus convention: north is toward x-min, east toward y-max.
var anchorGrid = map[Anchor][2]float64{
	AnchorNorth:     {1, 3},
	AnchorNorthEast: {1, 5},
	AnchorEast:      {3, 5},
	AnchorSouthEast: {5, 5},
	AnchorSouth:     {5, 3},
	AnchorSouthWest: {5, 1},
	AnchorWest:      {3, 1},
	AnchorNorthWest: {1, 1},
	AnchorCenter:    {3, 3},
}

// ParseAnchor converts a label into an [Anchor].
// Returns [ErrUnknownAnchor] for labels outside the nine-point grid.
func ParseAnchor(label string) (Anchor, error) {
	a := Anchor(label)
	if _, ok := anchorGrid[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAnchor, label)
	}
	return a, nil
}

// Valid reports whether a is one of the nine defined anchors.
func (a Anchor) Valid() bool {
	_, ok := anchorGrid[a]
	return ok
}

// Anchors returns all nine anchors in grid order.
// Useful for validation messages and manifest documentation.
func Anchors() []Anchor {
	return []Anchor{
		AnchorNorth, AnchorNorthEast, AnchorEast, AnchorSouthEast,
		AnchorSouth, AnchorSouthWest, AnchorWest, AnchorNorthWest,
		AnchorCenter,
	}
}
