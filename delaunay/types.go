package delaunay

import (
	"errors"

	"github.com/msakai/hgeometry/ball"
)

var (
	// ErrTooFewSites reports fewer than three input sites.
	ErrTooFewSites = errors.New("delaunay: fewer than three sites")

	// ErrDuplicateSite reports two input sites with identical coordinates.
	ErrDuplicateSite = errors.New("delaunay: duplicate site")

	// ErrCollinear reports an input whose sites all lie on a single line.
	ErrCollinear = errors.New("delaunay: all sites collinear")
)

// Panic message for site-index misuse (programmer error).
const panicSiteRange = "delaunay: site index out of range"

// Options holds the tunable parameters of Triangulate.
type Options struct {
	// Epsilon is the absolute tolerance of the empty-circumdisk test: a
	// site defeats a candidate disk only when it lies inside by more than
	// Epsilon in squared-distance terms. Sites within the band count as
	// boundary and do not block an edge.
	Epsilon float64
}

// Option mutates Options before triangulation begins.
type Option func(*Options)

// DefaultOptions returns the defaults: Epsilon = ball.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: ball.DefaultEpsilon}
}

// WithEpsilon sets the in-circle tolerance. Negative values are clamped
// to zero, which makes the test exact.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			eps = 0
		}
		o.Epsilon = eps
	}
}
