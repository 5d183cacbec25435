package polygon_test

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msakai/hgeometry/polygon"
)

// pt is shorthand for an r2 point.
func pt(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

// square returns the CCW unit-ish square [0,4] x [0,4] or fails the test.
func square(t *testing.T) polygon.Polygon {
	t.Helper()
	pg, err := polygon.New([]r2.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)})
	require.NoError(t, err)
	return pg
}

// TestNew_Validation covers the construction error cases and the defensive
// copy of the input slice.
func TestNew_Validation(t *testing.T) {
	_, err := polygon.New([]r2.Point{pt(0, 0), pt(1, 0)})
	assert.ErrorIs(t, err, polygon.ErrTooFewPoints, "two vertices are not a polygon")

	_, err = polygon.New([]r2.Point{pt(0, 0), pt(1, 0), pt(1, 0), pt(0, 1)})
	assert.ErrorIs(t, err, polygon.ErrRepeatedPoint, "consecutive duplicate rejected")

	_, err = polygon.New([]r2.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 0)})
	assert.ErrorIs(t, err, polygon.ErrRepeatedPoint, "explicitly closed input rejected: closing edge is implicit")

	in := []r2.Point{pt(0, 0), pt(2, 0), pt(1, 2)}
	pg, err := polygon.New(in)
	require.NoError(t, err)
	in[0] = pt(99, 99)
	assert.Equal(t, pt(0, 0), pg.Vertex(0), "construction copies the input")
}

// TestAreaOrientation checks the shoelace area and winding predicates on
// both orientations of a triangle.
func TestAreaOrientation(t *testing.T) {
	ccw, err := polygon.New([]r2.Point{pt(0, 0), pt(4, 0), pt(0, 3)})
	require.NoError(t, err)

	assert.Equal(t, 6.0, ccw.SignedArea(), "CCW triangle has positive area")
	assert.Equal(t, 6.0, ccw.Area())
	assert.True(t, ccw.IsCCW())

	cw := ccw.Reverse()
	assert.Equal(t, -6.0, cw.SignedArea(), "reversing flips the sign")
	assert.Equal(t, 6.0, cw.Area(), "unsigned area is orientation-free")
	assert.False(t, cw.IsCCW())

	assert.Equal(t, ccw.Vertex(0), cw.Vertex(0), "Reverse keeps the first vertex first")
	assert.Equal(t, ccw.Vertices(), cw.Reverse().Vertices(), "double reverse restores the ring")
}

// TestEdgeVertexAccess checks indexed access including the implicit closing
// edge and the bounds panics.
func TestEdgeVertexAccess(t *testing.T) {
	pg := square(t)

	require.Equal(t, 4, pg.NumVertices())
	a, b := pg.Edge(0)
	assert.Equal(t, pt(0, 0), a)
	assert.Equal(t, pt(4, 0), b)

	a, b = pg.Edge(3)
	assert.Equal(t, pt(0, 4), a, "edge 3 starts at the last vertex")
	assert.Equal(t, pt(0, 0), b, "and closes back to the first")

	assert.Panics(t, func() { pg.Edge(4) }, "edge index out of range")
	assert.Panics(t, func() { pg.Vertex(-1) }, "vertex index out of range")

	vs := pg.Vertices()
	vs[0] = pt(9, 9)
	assert.Equal(t, pt(0, 0), pg.Vertex(0), "Vertices returns a copy")
}

// TestCentroid checks the area centroid on a square and on an asymmetric
// L-shape against hand-computed values.
func TestCentroid(t *testing.T) {
	assert.Equal(t, pt(2, 2), square(t).Centroid(), "square centroid is its center")

	// L-shape: a 4x1 bottom bar plus a 2x2 column on its left end.
	l, err := polygon.New([]r2.Point{
		pt(0, 0), pt(4, 0), pt(4, 1), pt(2, 1), pt(2, 3), pt(0, 3),
	})
	require.NoError(t, err)
	require.Equal(t, 8.0, l.Area(), "L-shape area is 4+4")
	assert.Equal(t, pt(1.5, 1.25), l.Centroid(), "mean of the two pieces' centroids")
}

// TestBoundingBox checks the hull box of a non-axis-aligned triangle.
func TestBoundingBox(t *testing.T) {
	pg, err := polygon.New([]r2.Point{pt(-1, 2), pt(5, -3), pt(2, 7)})
	require.NoError(t, err)

	bb := pg.BoundingBox()
	assert.Equal(t, pt(-1, -3), bb.Min())
	assert.Equal(t, pt(5, 7), bb.Max())
}
