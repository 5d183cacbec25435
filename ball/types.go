// Package ball defines the core types and sentinel errors for the ball
// subpackage of github.com/msakai/hgeometry.
package ball

import "errors"

// Sentinel errors for ball construction.
var (
	// ErrNegativeRadius indicates a disk constructed with a negative radius.
	ErrNegativeRadius = errors.New("ball: radius must be non-negative")
	// ErrCollinear indicates three collinear points, which lie on no circle.
	ErrCollinear = errors.New("ball: boundary points must not be collinear")
)

// DefaultEpsilon is the recommended absolute tolerance on squared distances
// for boundary classification. Callers working on unusually large or tiny
// coordinates should scale it accordingly.
const DefaultEpsilon = 1e-9

// Location classifies a point against a disk: strictly inside, on the
// boundary circle (within tolerance), or strictly outside.
type Location uint8

const (
	// Inside means strictly interior to the disk.
	Inside Location = iota
	// OnBoundary means on the boundary circle, within the given tolerance.
	OnBoundary
	// Outside means strictly exterior to the disk.
	Outside
)

// String renders the location for diagnostics.
func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	default:
		return "outside"
	}
}
