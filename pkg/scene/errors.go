package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAnchor is returned by [ParseAnchor] and [Surface.Add] for
	// anchor labels outside the nine-point grid. Unknown labels are rejected
	// at tree-build time rather than silently mapped to the center.
	ErrUnknownAnchor = errors.New("unknown anchor")

	// ErrUnknownDirection is returned by [ParseDirection] and [Object.Add]
	// for direction labels outside the eight compass values.
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrUnknownDistance is returned by [ParseDistance] for distance class
	// labels other than "any" and "close".
	ErrUnknownDistance = errors.New("unknown distance class")

	// ErrPlacementFailed is the sentinel matched by errors.Is for
	// [PlacementError]. Placement exhaustion is fatal for the current scene
	// attempt; callers recover by rebuilding the tree with fresh randomness.
	ErrPlacementFailed = errors.New("placement failed")

	// ErrBackend wraps any scene backend failure (unknown object, transport
	// error, malformed geometry). Backend errors are never retried inside the
	// solver and surface to the caller immediately.
	ErrBackend = errors.New("backend error")
)

// PlacementError reports that rejection sampling exhausted [MaxAttempts]
// candidates for one object without finding a valid pose. It matches
// [ErrPlacementFailed] via errors.Is.
type PlacementError struct {
	Object string // name of the object that could not be placed
}

// Error implements the error interface.
func (e *PlacementError) Error() string {
	return fmt.Sprintf("no valid pose for %q after %d attempts", e.Object, MaxAttempts)
}

// Unwrap returns [ErrPlacementFailed] so callers can match the class of
// failure without inspecting the object name.
func (e *PlacementError) Unwrap() error { return ErrPlacementFailed }

// backendErr wraps err as a backend failure, keeping the operation name for
// diagnostics.
func backendErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrBackend, op, err)
}
