package scene

import (
	"fmt"
	"math"
)

// Direction names one of eight compass-style angular offsets used for
// object-to-object placement. Each direction maps to a fixed angle in
// [0, 2π); the solver samples around that angle with [DirectionSigma].
type Direction string

// The eight relative placement directions.
const (
	DirectionRight      Direction = "right"
	DirectionRightFront Direction = "right_front"
	DirectionFront      Direction = "front"
	DirectionLeftFront  Direction = "left_front"
	DirectionLeft       Direction = "left"
	DirectionLeftBack   Direction = "left_back"
	DirectionBack       Direction = "back"
	DirectionRightBack  Direction = "right_back"
)

// directionAngles is the total angle table: right is 0 and angles advance
// counter-clockwise in π/4 steps, so each diagonal is the midpoint of its
// two cardinal neighbors.
var directionAngles = map[Direction]float64{
	DirectionRight:      0,
	DirectionRightFront: math.Pi / 4,
	DirectionFront:      math.Pi / 2,
	DirectionLeftFront:  3 * math.Pi / 4,
	DirectionLeft:       math.Pi,
	DirectionLeftBack:   5 * math.Pi / 4,
	DirectionBack:       3 * math.Pi / 2,
	DirectionRightBack:  7 * math.Pi / 4,
}

// ParseDirection converts a label into a [Direction].
// Returns [ErrUnknownDirection] for labels outside the eight compass values.
func ParseDirection(label string) (Direction, error) {
	d := Direction(label)
	if _, ok := directionAngles[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, label)
	}
	return d, nil
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool {
	_, ok := directionAngles[d]
	return ok
}

// Angle returns the direction's angle in radians. Angle panics for
// undefined directions; validate with [ParseDirection] at tree-build time.
func (d Direction) Angle() float64 {
	a, ok := directionAngles[d]
	if !ok {
		panic(fmt.Sprintf("scene: undefined direction %q", d))
	}
	return a
}

// Directions returns all eight directions in angle order.
func Directions() []Direction {
	return []Direction{
		DirectionRight, DirectionRightFront, DirectionFront, DirectionLeftFront,
		DirectionLeft, DirectionLeftBack, DirectionBack, DirectionRightBack,
	}
}

// Distance is a qualitative modifier narrowing the sampled distance range
// between a parent and its child.
type Distance string

// Distance classes.
const (
	// DistanceAny leaves the full feasible range open.
	DistanceAny Distance = "any"
	// DistanceClose keeps the lower bound and pulls the upper bound toward
	// it through two successive midpoints, concentrating samples near the
	// parent.
	DistanceClose Distance = "close"
)

// ParseDistance converts a label into a [Distance]. The empty label means
// [DistanceAny]. Returns [ErrUnknownDistance] for anything else.
func ParseDistance(label string) (Distance, error) {
	switch Distance(label) {
	case "":
		return DistanceAny, nil
	case DistanceAny:
		return DistanceAny, nil
	case DistanceClose:
		return DistanceClose, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDistance, label)
}
