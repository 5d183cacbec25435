package planargraph

import "fmt"

// Validate checks the preconditions Build and FromRotation trust the caller
// on: the rotation system must describe a single connected component whose
// face structure satisfies Euler's formula. Construction never runs these
// checks, so call Validate when the rotation system comes from an untrusted
// source.
//
// Returns ErrDisconnected when some vertex is unreachable from vertex 0,
// and ErrNonPlanar when the dual embedding has a number of orbits other
// than E - V + 2; such a rotation system embeds the graph on a torus or a
// higher-genus surface, and every face query against it is meaningless.
//
// Complexity: O(V+E).
func (g *Graph[V, E, F]) Validate() error {
	// 1. Breadth-first sweep over vertex orbits, twin-hopping arc by arc.
	visited := make([]bool, g.NumVertices())
	queue := make([]VertexID, 0, g.NumVertices())
	queue = append(queue, 0)
	visited[0] = true
	reached := 1
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.NeighborsOf(v) {
			if !visited[w] {
				visited[w] = true
				reached++
				queue = append(queue, w)
			}
		}
	}
	if reached != g.NumVertices() {
		return fmt.Errorf("planargraph: reached %d of %d vertices: %w", reached, g.NumVertices(), ErrDisconnected)
	}

	// 2. Count the face orbits actually induced by the embedding and hold
	//    them against the Euler count fixed at construction.
	if got := g.dualEmbedding().NumOrbits(); got != g.NumFaces() {
		return fmt.Errorf("planargraph: %d face orbits where Euler's formula needs %d: %w", got, g.NumFaces(), ErrNonPlanar)
	}
	return nil
}
