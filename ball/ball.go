package ball

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/box"
)

// Ball is a closed disk in the plane, stored as its center and squared
// radius. Keeping the radius squared avoids square roots on the predicate
// hot path and keeps integer inputs exact. Balls are immutable values.
type Ball struct {
	// Center is the disk's center.
	Center r2.Point
	// R2 is the squared radius, always non-negative.
	R2 float64
}

// New returns the closed disk with the given center and radius. Fails with
// ErrNegativeRadius when radius < 0; a zero radius is legal and yields the
// degenerate one-point disk.
func New(center r2.Point, radius float64) (Ball, error) {
	if radius < 0 {
		return Ball{}, ErrNegativeRadius
	}
	return Ball{Center: center, R2: radius * radius}, nil
}

// FromDiametralPoints returns the smallest disk containing a and b: its
// center is their midpoint and the segment ab is a diameter.
func FromDiametralPoints(a, b r2.Point) Ball {
	center := a.Add(b).Mul(0.5)
	return Ball{Center: center, R2: norm2(a.Sub(center))}
}

// FromBoundaryPoints returns the circumdisk of a, b and c: the unique disk
// whose boundary passes through all three. Fails with ErrCollinear when the
// points lie on one line (including repeated points). Near-collinear input
// is legal but yields a disk of enormous radius; robustness is the caller's
// concern.
func FromBoundaryPoints(a, b, c r2.Point) (Ball, error) {
	// 1. The circumcenter is the solution of two perpendicular-bisector
	//    equations; d is twice the signed triangle area.
	d := 2 * TriArea(a, b, c)
	if d == 0 {
		return Ball{}, ErrCollinear
	}
	an, bn, cn := norm2(a), norm2(b), norm2(c)
	center := r2.Point{
		X: (an*(b.Y-c.Y) + bn*(c.Y-a.Y) + cn*(a.Y-b.Y)) / d,
		Y: (an*(c.X-b.X) + bn*(a.X-c.X) + cn*(b.X-a.X)) / d,
	}

	// 2. The squared radius is the squared distance to any of the three.
	return Ball{Center: center, R2: norm2(a.Sub(center))}, nil
}

// Radius returns the disk's radius.
func (b Ball) Radius() float64 { return math.Sqrt(b.R2) }

// Contains reports whether p lies in the closed disk (boundary included).
// Complexity: O(1), no square root.
func (b Ball) Contains(p r2.Point) bool {
	return norm2(p.Sub(b.Center)) <= b.R2
}

// Locate classifies p against the disk. eps is an absolute tolerance on
// squared distances: points whose squared center distance is within eps of
// R2 count as OnBoundary. Pass 0 for exact comparison, DefaultEpsilon for
// unit-scale coordinates.
func (b Ball) Locate(p r2.Point, eps float64) Location {
	diff := norm2(p.Sub(b.Center)) - b.R2
	switch {
	case diff > eps:
		return Outside
	case diff < -eps:
		return Inside
	default:
		return OnBoundary
	}
}

// Intersects reports whether the two closed disks share at least one point.
func (b Ball) Intersects(o Ball) bool {
	sum := b.Radius() + o.Radius()
	return norm2(b.Center.Sub(o.Center)) <= sum*sum
}

// BoundingBox returns the smallest box containing the disk.
func (b Ball) BoundingBox() box.Box {
	r := b.Radius()
	return box.New(
		r2.Point{X: b.Center.X - r, Y: b.Center.Y - r},
		r2.Point{X: b.Center.X + r, Y: b.Center.Y + r},
	)
}

// TriArea returns twice the signed area of the triangle abc: positive when
// the points wind counterclockwise, negative clockwise, zero when
// collinear.
func TriArea(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// CCW reports whether a, b, c wind strictly counterclockwise.
func CCW(a, b, c r2.Point) bool {
	return TriArea(a, b, c) > 0
}

// InDisk reports whether q lies strictly inside the circle through a, b and
// c, regardless of their winding order. eps is an absolute tolerance on the
// in-circle determinant: values within eps of zero count as on the circle,
// not inside. The classic four-point determinant stays in the coordinate
// field, so integer inputs are decided exactly with eps = 0.
func InDisk(a, b, c, q r2.Point, eps float64) bool {
	det := norm2(a)*TriArea(b, c, q) -
		norm2(b)*TriArea(a, c, q) +
		norm2(c)*TriArea(a, b, q) -
		norm2(q)*TriArea(a, b, c)
	if TriArea(a, b, c) < 0 {
		det = -det
	}
	return det > eps
}

// norm2 returns the squared length of p.
func norm2(p r2.Point) float64 {
	return p.Dot(p)
}
