package ball

import (
	"math"

	"github.com/golang/geo/r2"
)

// IntersectLine returns the points where the infinite line through p and q
// meets the disk's boundary circle: none, one (tangency) or two, ordered
// along the direction from p to q. p and q must be distinct; coincident
// points define no line and yield nil.
//
// The roots come from the quadratic |p + t(q-p) - center|^2 = R2; tangency
// is the exact double root, so near-tangent lines report two close points.
func (b Ball) IntersectLine(p, q r2.Point) []r2.Point {
	ts := b.lineRoots(p, q)
	out := make([]r2.Point, 0, len(ts))
	dir := q.Sub(p)
	for _, t := range ts {
		out = append(out, p.Add(dir.Mul(t)))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IntersectSegment returns the points where the closed segment pq meets the
// disk's boundary circle, ordered from p to q. A segment entirely inside
// the disk meets the boundary nowhere and yields nil.
func (b Ball) IntersectSegment(p, q r2.Point) []r2.Point {
	ts := b.lineRoots(p, q)
	out := make([]r2.Point, 0, len(ts))
	dir := q.Sub(p)
	for _, t := range ts {
		if t < 0 || t > 1 {
			continue
		}
		out = append(out, p.Add(dir.Mul(t)))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// lineRoots solves the line-circle quadratic and returns the sorted
// parameters t of the boundary hits along p + t(q-p).
func (b Ball) lineRoots(p, q r2.Point) []float64 {
	d := q.Sub(p)
	f := p.Sub(b.Center)

	// 1. Quadratic coefficients of |f + t*d|^2 = R2.
	a2 := norm2(d)
	if a2 == 0 {
		return nil
	}
	b1 := 2 * f.Dot(d)
	c := norm2(f) - b.R2

	// 2. The discriminant decides miss / tangency / crossing.
	disc := b1*b1 - 4*a2*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-b1 / (2 * a2)}
	default:
		sq := math.Sqrt(disc)
		return []float64{(-b1 - sq) / (2 * a2), (-b1 + sq) / (2 * a2)}
	}
}
