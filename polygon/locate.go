package polygon

import (
	"math"

	"github.com/golang/geo/r2"
)

// Locate classifies p against the polygon by a rightward ray-crossing walk:
// boundary contact (within Options.BoundaryEpsilon) is checked per edge
// first, then crossing parity decides interior versus exterior. Winding
// order does not matter. Complexity: O(n).
func (pg Polygon) Locate(p r2.Point, opts ...Option) Location {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	inside := false
	for i := range pg.pts {
		a, b := pg.pts[i], pg.pts[(i+1)%len(pg.pts)]

		// 1. Boundary contact ends the walk immediately.
		if onSegment(p, a, b, o.BoundaryEpsilon) {
			return OnBoundary
		}

		// 2. Count edges crossing the horizontal ray from p toward +x.
		//    The half-open rule (strict > on both ends) counts an edge
		//    through a vertex exactly once.
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// Contains reports whether p lies in the closed polygon: interior or
// boundary. Complexity: O(n).
func (pg Polygon) Contains(p r2.Point, opts ...Option) bool {
	return pg.Locate(p, opts...) != Outside
}

// onSegment reports whether p lies within eps of the closed segment ab.
func onSegment(p, a, b r2.Point, eps float64) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	length := ab.Norm()
	if length == 0 {
		return ap.Norm() <= eps
	}
	if math.Abs(ab.Cross(ap))/length > eps {
		return false
	}
	t := ap.Dot(ab) / (length * length)
	slack := eps / length
	return t >= -slack && t <= 1+slack
}
