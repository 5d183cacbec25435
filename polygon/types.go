// Package polygon defines the core types, options and sentinel errors for
// the polygon subpackage of github.com/msakai/hgeometry.
package polygon

import "errors"

// Sentinel errors for polygon construction.
var (
	// ErrTooFewPoints indicates fewer than three vertices.
	ErrTooFewPoints = errors.New("polygon: at least three vertices required")
	// ErrRepeatedPoint indicates two cyclically consecutive equal vertices.
	ErrRepeatedPoint = errors.New("polygon: consecutive vertices must be distinct")
)

// Internal panic messages for index bounds.
const (
	panicVertexRange = "polygon: vertex index out of range"
	panicEdgeRange   = "polygon: edge index out of range"
)

// Location classifies a point against a polygon: strictly interior, on the
// boundary (within tolerance), or strictly exterior.
type Location uint8

const (
	// Inside means strictly interior.
	Inside Location = iota
	// OnBoundary means on an edge or vertex, within the given tolerance.
	OnBoundary
	// Outside means strictly exterior.
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

// Options holds the tunable parameters of point location.
type Options struct {
	// BoundaryEpsilon is the maximum distance from an edge at which a
	// query point still counts as OnBoundary. Must be non-negative;
	// 0 detects exact boundary contact only.
	BoundaryEpsilon float64
}

// Option mutates Options; pass to Locate or Contains.
type Option func(*Options)

// DefaultOptions returns the defaults: BoundaryEpsilon 1e-9, matching
// unit-scale coordinates.
func DefaultOptions() Options {
	return Options{BoundaryEpsilon: 1e-9}
}

// WithBoundaryEpsilon sets the boundary tolerance. Negative values are
// clamped to 0.
func WithBoundaryEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			eps = 0
		}
		o.BoundaryEpsilon = eps
	}
}
