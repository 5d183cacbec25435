package ball_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msakai/hgeometry/ball"
)

// unitDisk builds the unit disk at the origin or fails the test.
func unitDisk(t *testing.T) ball.Ball {
	t.Helper()
	b, err := ball.New(pt(0, 0), 1)
	require.NoError(t, err)
	return b
}

// TestIntersectLine covers the three discriminant cases on the unit disk:
// secant, exact tangent, and miss, plus the coincident-endpoint degeneracy.
func TestIntersectLine(t *testing.T) {
	b := unitDisk(t)

	secant := b.IntersectLine(pt(-2, 0), pt(2, 0))
	require.Len(t, secant, 2, "a diameter line crosses twice")
	assert.Equal(t, pt(-1, 0), secant[0], "hits are ordered from p toward q")
	assert.Equal(t, pt(1, 0), secant[1])

	reversed := b.IntersectLine(pt(2, 0), pt(-2, 0))
	require.Len(t, reversed, 2)
	assert.Equal(t, pt(1, 0), reversed[0], "reversing the line reverses the order")

	tangent := b.IntersectLine(pt(-2, 1), pt(2, 1))
	require.Len(t, tangent, 1, "the line y=1 touches the unit circle once")
	assert.Equal(t, pt(0, 1), tangent[0])

	assert.Nil(t, b.IntersectLine(pt(-2, 2), pt(2, 2)), "the line y=2 misses")
	assert.Nil(t, b.IntersectLine(pt(3, 3), pt(3, 3)), "coincident points define no line")
}

// TestIntersectLine_OffsetChord checks a chord of an off-origin disk: the
// circle around (3,4) with radius 5 meets the vertical line x = 0 at the
// origin and at (0,8).
func TestIntersectLine_OffsetChord(t *testing.T) {
	disk, err := ball.New(pt(3, 4), 5)
	require.NoError(t, err)

	hits := disk.IntersectLine(pt(0, -10), pt(0, 10))
	require.Len(t, hits, 2, "vertical chord crosses twice")
	assert.InDelta(t, 0, hits[0].Y, 1e-12, "lower hit at the origin")
	assert.Equal(t, 0.0, hits[0].X)
	assert.InDelta(t, 8, hits[1].Y, 1e-12, "upper hit at (0,8)")
}

// TestIntersectSegment checks root clipping to the [0,1] parameter range.
func TestIntersectSegment(t *testing.T) {
	b := unitDisk(t)

	both := b.IntersectSegment(pt(-2, 0), pt(2, 0))
	require.Len(t, both, 2, "a segment through the disk crosses twice")
	assert.Equal(t, pt(-1, 0), both[0])
	assert.Equal(t, pt(1, 0), both[1])

	exiting := b.IntersectSegment(pt(0, 0), pt(2, 0))
	require.Len(t, exiting, 1, "a segment from the center exits once")
	assert.Equal(t, pt(1, 0), exiting[0])

	assert.Nil(t, b.IntersectSegment(pt(-0.5, 0), pt(0.5, 0)), "a segment inside the disk never meets the boundary")
	assert.Nil(t, b.IntersectSegment(pt(2, 0), pt(3, 0)), "a segment outside the disk misses")
	assert.Nil(t, b.IntersectSegment(pt(2, 2), pt(5, 2)), "a segment on a missing line misses")

	touch := b.IntersectSegment(pt(1, 0), pt(3, 0))
	require.Len(t, touch, 1, "a segment starting on the boundary touches it there")
	assert.Equal(t, pt(1, 0), touch[0])
}
