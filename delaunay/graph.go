package delaunay

import (
	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/planargraph"
)

// PlanarGraph converts the triangulation into a rotation-system graph with
// site positions as vertex payloads. Arcs take the lexicographic order of
// Edges(), each Forward dart leaving the smaller site index, and the
// counterclockwise neighbor rings become the vertex rotations. Faces of
// the result are the triangles plus one outer face.
//
// Complexity: O(V + E).
func (t *Triangulation) PlanarGraph() (*planargraph.Graph[r2.Point, struct{}, struct{}], error) {
	// 1. Assign arc identities in edge order.
	arcAt := make(map[[2]int]planargraph.Arc, len(t.edges))
	for e, ij := range t.edges {
		arcAt[ij] = planargraph.Arc(e)
	}

	// 2. Turn each neighbor ring into the vertex's dart rotation: the dart
	//    leaving v along arc {v, w} is Forward exactly when v < w.
	rotations := make([][]planargraph.Dart, len(t.sites))
	for v, ring := range t.adj {
		rot := make([]planargraph.Dart, len(ring))
		for idx, w := range ring {
			if v < w {
				rot[idx] = planargraph.Dart{Arc: arcAt[[2]int{v, w}], Dir: planargraph.Forward}
			} else {
				rot[idx] = planargraph.Dart{Arc: arcAt[[2]int{w, v}], Dir: planargraph.Backward}
			}
		}
		rotations[v] = rot
	}

	g, err := planargraph.FromRotation[r2.Point, struct{}, struct{}](rotations)
	if err != nil {
		return nil, err
	}
	return g.WithVertexData(t.Sites())
}
