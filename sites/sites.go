package sites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// Random returns n points drawn uniformly from the bounds.
// Complexity: O(n).
func Random(n int, opts ...Option) ([]r2.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("sites: Random(%d): %w", n, ErrBadCount)
	}
	o := newOptions(opts)
	rng := o.source()
	min := o.Bounds.Min()

	pts := make([]r2.Point, n)
	for i := range pts {
		pts[i] = r2.Point{
			X: min.X + rng.Float64()*o.Bounds.Width(),
			Y: min.Y + rng.Float64()*o.Bounds.Height(),
		}
	}
	return pts, nil
}

// Ring returns n points evenly spaced on the circle inscribed in the
// bounds, starting at the top and proceeding counterclockwise. The points
// are cocircular by construction; pass WithJitter to put them in general
// position. Complexity: O(n).
func Ring(n int, opts ...Option) ([]r2.Point, error) {
	if n < 3 {
		return nil, fmt.Errorf("sites: Ring(%d): %w", n, ErrBadCount)
	}
	o := newOptions(opts)
	rng := o.source()
	center := o.Bounds.Center()
	radius := math.Min(o.Bounds.Width(), o.Bounds.Height()) / 2

	pts := make([]r2.Point, n)
	for i := range pts {
		angle := math.Pi/2 + float64(i)/float64(n)*2*math.Pi
		pts[i] = perturb(r2.Point{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}, o.Jitter, rng)
	}
	return pts, nil
}

// Grid returns rows*cols points at the cell centers of a uniform grid over
// the bounds, emitted in row-major order. Exact grids are heavily
// degenerate for triangulation; pass WithJitter to break the ties.
// Complexity: O(rows*cols).
func Grid(rows, cols int, opts ...Option) ([]r2.Point, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("sites: Grid(%d, %d): %w", rows, cols, ErrBadCount)
	}
	o := newOptions(opts)
	rng := o.source()
	min := o.Bounds.Min()
	cw := o.Bounds.Width() / float64(cols)
	ch := o.Bounds.Height() / float64(rows)

	pts := make([]r2.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, perturb(r2.Point{
				X: min.X + (float64(c)+0.5)*cw,
				Y: min.Y + (float64(r)+0.5)*ch,
			}, o.Jitter, rng))
		}
	}
	return pts, nil
}

// perturb displaces p by a uniform offset in [-j, j] per coordinate.
// A zero amplitude consumes no randomness.
func perturb(p r2.Point, j float64, rng *rand.Rand) r2.Point {
	if j == 0 {
		return p
	}
	return r2.Point{
		X: p.X + (rng.Float64()*2-1)*j,
		Y: p.Y + (rng.Float64()*2-1)*j,
	}
}
