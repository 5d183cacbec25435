package planargraph_test

import (
	"testing"

	"github.com/msakai/hgeometry/planargraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDual_FixtureFaceOrbits is the regression anchor for dualization: the
// fixture's dual embedding must decompose into exactly these four face
// boundaries, in this deterministic order (universe order is orbit-major
// over the primal embedding).
func TestDual_FixtureFaceOrbits(t *testing.T) {
	g := fixtureGraph(t)

	want := [][]planargraph.Dart{
		{bwd(0)},
		{fwd(2), fwd(4), bwd(1), fwd(0)},
		{fwd(1), bwd(3), bwd(2)},
		{bwd(4), fwd(3), fwd(5), bwd(5)},
	}
	require.Equal(t, len(want), g.NumFaces(), "fixture has four faces")
	for f, boundary := range want {
		assert.Equal(t, boundary, g.Boundary(planargraph.FaceID(f)), "boundary of f%d", f)
	}
}

// TestDual_LeftRightFaces checks face sidedness on the fixture: a regular
// arc separates two faces, the loop separates its inside from the shared
// face, and the pendant arc sees the same face on both sides.
func TestDual_LeftRightFaces(t *testing.T) {
	g := fixtureGraph(t)

	assert.Equal(t, planargraph.FaceID(1), g.RightFace(fwd(2)), "d2+ walks along f1")
	assert.Equal(t, planargraph.FaceID(2), g.LeftFace(fwd(2)), "f2 lies left of d2+")

	assert.Equal(t, planargraph.FaceID(0), g.RightFace(bwd(0)), "the loop encloses f0")
	assert.Equal(t, planargraph.FaceID(1), g.LeftFace(bwd(0)), "outside the loop lies f1")

	assert.Equal(t, g.RightFace(bwd(5)), g.LeftFace(bwd(5)), "a pendant arc has one face on both sides")
	assert.Equal(t, planargraph.FaceID(3), g.RightFace(bwd(5)), "and it is f3")
}

// TestDual_BoundaryWalkClosure verifies that the boundary of every face is
// the orbit traced by next-incident-dart steps in the dual graph: starting
// anywhere on the boundary and stepping len(boundary) times visits exactly
// the boundary darts and returns to the start.
func TestDual_BoundaryWalkClosure(t *testing.T) {
	g := fixtureGraph(t)
	d := planargraph.Dual(g)

	for _, f := range g.Faces() {
		boundary := g.Boundary(f)
		walk := make([]planargraph.Dart, 0, len(boundary))
		cur := boundary[0]
		for range boundary {
			walk = append(walk, cur)
			cur = d.NextIncidentDart(cur)
		}
		assert.Equal(t, boundary, walk, "walk around f%d retraces its boundary", int(f))
		assert.Equal(t, boundary[0], cur, "walk around f%d closes", int(f))

		for _, bd := range boundary {
			assert.Equal(t, f, g.RightFace(bd), "every boundary dart of f%d has it as right face", int(f))
		}
	}
}

// TestDual_CountsAndInvolution checks the count swap under dualization and
// that dualizing twice restores the original graph: same counts, same
// world, and the identical embedding value.
func TestDual_CountsAndInvolution(t *testing.T) {
	g := fixtureGraph(t)

	d := planargraph.Dual(g)
	assert.Equal(t, g.NumFaces(), d.NumVertices(), "faces become vertices")
	assert.Equal(t, g.NumVertices(), d.NumFaces(), "vertices become faces")
	assert.Equal(t, g.NumEdges(), d.NumEdges(), "arcs are shared")
	assert.Equal(t, planargraph.WorldDual, d.World(), "dualization flips the world")

	dd := planargraph.Dual(d)
	assert.Equal(t, planargraph.WorldPrimal, dd.World(), "double dual is primal again")
	assert.Same(t, g.Embedding(), dd.Embedding(), "double dual reuses the primal embedding")
	assert.Equal(t, g.NumVertices(), dd.NumVertices())
	assert.Equal(t, g.NumFaces(), dd.NumFaces())
}

// TestDual_VertexRotationsAreBoundaries checks the two views of one fact:
// the rotation of dual vertex v equals the boundary of primal face v.
func TestDual_VertexRotationsAreBoundaries(t *testing.T) {
	g := fixtureGraph(t)
	d := planargraph.Dual(g)

	for _, f := range g.Faces() {
		assert.Equal(t,
			g.Boundary(f),
			d.IncidentDarts(planargraph.VertexID(f)),
			"dual rotation of v%d is the boundary of f%d", int(f), int(f))
	}
}

// TestDual_PayloadRoleSwap checks payload carriage: vertex and face data
// swap roles, dart data rides along unchanged, and the trip back restores
// the original assignment.
func TestDual_PayloadRoleSwap(t *testing.T) {
	base, err := planargraph.FromRotation[string, int, string](fixtureRotation())
	require.NoError(t, err)

	g, err := base.WithVertexData([]string{"A", "B", "C", "D"})
	require.NoError(t, err)
	g, err = g.WithFaceData([]string{"p", "q", "r", "s"})
	require.NoError(t, err)
	darts := make([]int, g.NumDarts())
	for i := range darts {
		darts[i] = 100 + i
	}
	g, err = g.WithDartData(darts)
	require.NoError(t, err)

	d := planargraph.Dual(g)
	for i := 0; i < 4; i++ {
		assert.Equal(t, g.FaceData(planargraph.FaceID(i)), d.VertexData(planargraph.VertexID(i)),
			"dual vertex %d carries primal face %d's payload", i, i)
		assert.Equal(t, g.VertexData(planargraph.VertexID(i)), d.FaceData(planargraph.FaceID(i)),
			"dual face %d carries primal vertex %d's payload", i, i)
	}
	for _, dart := range g.Darts() {
		assert.Equal(t, g.DartData(dart), d.DartData(dart), "dart payload of %v is space-independent", dart)
	}

	dd := planargraph.Dual(d)
	assert.Equal(t, "B", dd.VertexData(planargraph.VertexID(1)), "double dual restores vertex payloads")
	assert.Equal(t, "r", dd.FaceData(planargraph.FaceID(2)), "double dual restores face payloads")
}

// TestDual_EulerAcrossSpaces checks Euler's formula in both spaces of the
// fixture and of the minimal loop graph.
func TestDual_EulerAcrossSpaces(t *testing.T) {
	g := fixtureGraph(t)
	d := planargraph.Dual(g)
	assert.Equal(t, d.NumEdges()-d.NumVertices()+2, d.NumFaces(), "Euler holds in the dual")

	loop, err := planargraph.FromRotation[struct{}, struct{}, struct{}](
		[][]planargraph.Dart{{fwd(0), bwd(0)}})
	require.NoError(t, err)
	ld := planargraph.Dual(loop)
	assert.Equal(t, 2, ld.NumVertices(), "loop dual: one vertex per side")
	assert.Equal(t, 1, ld.NumFaces(), "loop dual: single face")
}
