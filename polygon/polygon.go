package polygon

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/box"
)

// Polygon is a simple polygon given by its vertices in order, implicitly
// closed: the last vertex connects back to the first. Simplicity (no
// self-intersection) is a documented precondition, not a checked one;
// area, centroid and location results are meaningless without it.
// Polygons are immutable values.
type Polygon struct {
	pts []r2.Point
}

// New builds a polygon from at least three vertices. The slice is copied.
// Fails with ErrTooFewPoints on short input and ErrRepeatedPoint when two
// cyclically consecutive vertices coincide (this includes a last vertex
// that repeats the first; the closing edge is implicit).
func New(pts []r2.Point) (Polygon, error) {
	if len(pts) < 3 {
		return Polygon{}, fmt.Errorf("polygon: %d vertices: %w", len(pts), ErrTooFewPoints)
	}
	for i, p := range pts {
		if p == pts[(i+1)%len(pts)] {
			return Polygon{}, fmt.Errorf("polygon: vertex %d: %w", i, ErrRepeatedPoint)
		}
	}
	own := make([]r2.Point, len(pts))
	copy(own, pts)
	return Polygon{pts: own}, nil
}

// NumVertices returns the vertex count.
func (pg Polygon) NumVertices() int { return len(pg.pts) }

// Vertices returns a copy of the vertex ring.
func (pg Polygon) Vertices() []r2.Point {
	out := make([]r2.Point, len(pg.pts))
	copy(out, pg.pts)
	return out
}

// Vertex returns the i-th vertex. Panics when i is out of range.
func (pg Polygon) Vertex(i int) r2.Point {
	if i < 0 || i >= len(pg.pts) {
		panic(fmt.Sprintf("%s: vertex %d of %d", panicVertexRange, i, len(pg.pts)))
	}
	return pg.pts[i]
}

// Edge returns the endpoints of the i-th edge, from vertex i to vertex
// (i+1) mod n; edge n-1 is the implicit closing edge. Panics when i is out
// of range.
func (pg Polygon) Edge(i int) (a, b r2.Point) {
	if i < 0 || i >= len(pg.pts) {
		panic(fmt.Sprintf("%s: edge %d of %d", panicEdgeRange, i, len(pg.pts)))
	}
	return pg.pts[i], pg.pts[(i+1)%len(pg.pts)]
}

// SignedArea returns the polygon's area with orientation sign: positive
// when the vertices wind counterclockwise, negative clockwise. Shoelace
// formula; Complexity: O(n).
func (pg Polygon) SignedArea() float64 {
	sum := 0.0
	for i, p := range pg.pts {
		q := pg.pts[(i+1)%len(pg.pts)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// Area returns the unsigned area.
func (pg Polygon) Area() float64 {
	a := pg.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether the vertices wind counterclockwise.
func (pg Polygon) IsCCW() bool { return pg.SignedArea() > 0 }

// Reverse returns the polygon with opposite winding: same vertex set, the
// ring read backwards starting from the same first vertex.
func (pg Polygon) Reverse() Polygon {
	n := len(pg.pts)
	out := make([]r2.Point, n)
	out[0] = pg.pts[0]
	for i := 1; i < n; i++ {
		out[i] = pg.pts[n-i]
	}
	return Polygon{pts: out}
}

// Centroid returns the area centroid. Meaningless for polygons with zero
// signed area. Complexity: O(n).
func (pg Polygon) Centroid() r2.Point {
	var cx, cy, area6 float64
	for i, p := range pg.pts {
		q := pg.pts[(i+1)%len(pg.pts)]
		w := p.Cross(q)
		cx += (p.X + q.X) * w
		cy += (p.Y + q.Y) * w
		area6 += w
	}
	area6 *= 3 // 6 * signed area
	return r2.Point{X: cx / area6, Y: cy / area6}
}

// BoundingBox returns the smallest box containing the polygon.
func (pg Polygon) BoundingBox() box.Box {
	b, _ := box.FromPoints(pg.pts...) // never errors: New enforces >= 3 vertices
	return b
}
