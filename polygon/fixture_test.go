package polygon_test

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msakai/hgeometry/polygon"
)

// Test rings live as plain SVG files under fixtures/ so they can be drawn
// and edited in any vector editor. loadFixture extracts the single
// <polygon> element and normalizes its winding to counterclockwise (a ring
// drawn clockwise on screen is clockwise in these coordinates too, since we
// read the SVG values verbatim).

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) polygon.Polygon {
	t.Helper()

	f, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "open fixture %q", name)
	defer f.Close()

	root, err := svgparser.Parse(f, true)
	require.NoError(t, err, "parse fixture %q", name)

	els := root.FindAll("polygon")
	require.Len(t, els, 1, "fixture %q must hold exactly one polygon", name)

	var pts []r2.Point
	for _, field := range strings.Fields(els[0].Attributes["points"]) {
		xy := strings.Split(field, ",")
		require.Len(t, xy, 2, "malformed point %q in fixture %q", field, name)
		x, err := strconv.ParseFloat(xy[0], 64)
		require.NoError(t, err, "x of %q in fixture %q", field, name)
		y, err := strconv.ParseFloat(xy[1], 64)
		require.NoError(t, err, "y of %q in fixture %q", field, name)
		pts = append(pts, r2.Point{X: x, Y: y})
	}

	pg, err := polygon.New(pts)
	require.NoError(t, err, "fixture %q is not a usable ring", name)
	if !pg.IsCCW() {
		pg = pg.Reverse()
	}
	return pg
}

// TestFixture_Pentagon loads a convex ring authored clockwise and checks
// that the loader flipped its winding.
func TestFixture_Pentagon(t *testing.T) {
	pg := loadFixture(t, "pentagon")

	require.Equal(t, 5, pg.NumVertices())
	assert.True(t, pg.IsCCW(), "loader must normalize winding")
	assert.Equal(t, pt(5, 35), pg.Vertex(0), "first vertex survives reversal")
	assert.Equal(t, pt(50, 5), pg.Vertex(1), "remaining ring is read backwards")
	assert.Equal(t, 5365.0, pg.Area())

	bb := pg.BoundingBox()
	assert.Equal(t, pt(5, 5), bb.Min())
	assert.Equal(t, pt(95, 90), bb.Max())

	assert.Equal(t, polygon.Inside, pg.Locate(pt(50, 50)))
	assert.Equal(t, polygon.Outside, pg.Locate(pt(0, 0)))
	assert.Equal(t, polygon.OnBoundary, pg.Locate(pt(50, 90)), "top edge midpoint")
}

// TestFixture_Comb loads a comb authored counterclockwise and verifies the
// loader kept it verbatim, then spot-checks containment in teeth and gaps.
func TestFixture_Comb(t *testing.T) {
	pg := loadFixture(t, "comb")

	require.Equal(t, 12, pg.NumVertices())
	assert.True(t, pg.IsCCW())
	assert.Equal(t, eShape(t).Vertices(), pg.Vertices(), "already-CCW input loads unchanged")
	assert.Equal(t, 1300.0, pg.Area())

	assert.Equal(t, polygon.Inside, pg.Locate(pt(20, 5)), "bottom tooth")
	assert.Equal(t, polygon.Inside, pg.Locate(pt(20, 25)), "middle tooth")
	assert.Equal(t, polygon.Outside, pg.Locate(pt(20, 15)), "gap between teeth")
	assert.Equal(t, polygon.Outside, pg.Locate(pt(35, 25)), "past the short middle tooth")
}
