package interval

import (
	"errors"

	"github.com/golang/geo/r1"
)

// ErrNoPoints indicates FromPoints was called without any point.
var ErrNoPoints = errors.New("interval: at least one point required")

// Interval is a closed interval [Lo, Hi] on the real line. It embeds
// r1.Interval, so its predicates (Contains, Intersects, Length, Center,
// IsEmpty, ClampPoint, ...) apply directly. An interval with Lo > Hi is
// empty, per the r1 convention.
type Interval struct {
	r1.Interval
}

// New returns the closed interval with the given endpoints. The endpoints
// may be passed in either order.
func New(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{r1.Interval{Lo: a, Hi: b}}
}

// FromPoints returns the smallest interval containing all given points.
func FromPoints(xs ...float64) (Interval, error) {
	if len(xs) == 0 {
		return Interval{}, ErrNoPoints
	}
	iv := r1.IntervalFromPoint(xs[0])
	for _, x := range xs[1:] {
		iv = iv.AddPoint(x)
	}
	return Interval{iv}, nil
}

// Intersect returns the overlap of i and o and whether it is non-empty.
// Closed semantics: intervals touching in a single point intersect, and
// the overlap is that degenerate point interval.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	inter := i.Interval.Intersection(o.Interval)
	if inter.IsEmpty() {
		return Interval{}, false
	}
	return Interval{inter}, true
}

// Union returns the smallest interval containing both i and o.
func (i Interval) Union(o Interval) Interval {
	return Interval{i.Interval.Union(o.Interval)}
}

// Shift translates the interval by dx.
func (i Interval) Shift(dx float64) Interval {
	if i.IsEmpty() {
		return i
	}
	return Interval{r1.Interval{Lo: i.Lo + dx, Hi: i.Hi + dx}}
}

// Expanded grows the interval by margin on both sides (shrinks it for a
// negative margin; may become empty).
func (i Interval) Expanded(margin float64) Interval {
	return Interval{i.Interval.Expanded(margin)}
}
