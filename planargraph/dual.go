package planargraph

import "github.com/msakai/hgeometry/permutation"

// dualEmbedding returns the rotation system of the dual graph: the cycle
// decomposition of d -> apply(embedding, twin(d)) over this graph's darts.
// Its orbits are the face boundaries of the primal embedding. Computed on
// first use and cached; graphs sharing an embedding share the cache.
func (g *Graph[V, E, F]) dualEmbedding() *permutation.Permutation[Dart] {
	if de := g.dual.emb.Load(); de != nil {
		return de
	}
	de := permutation.FromFunction(g.emb.Elems(), func(d Dart) Dart {
		return g.emb.Apply(d.Twin())
	})
	// Racing computations produce identical permutations; the first store
	// wins and the loser's copy is dropped.
	if !g.dual.emb.CompareAndSwap(nil, de) {
		return g.dual.emb.Load()
	}
	return de
}

// Dual returns the dual graph of g: one vertex per face of g and one face
// per vertex of g, over the same arcs and darts. Vertex and face payload
// slices swap roles, dart payloads ride along unchanged, and the world tag
// flips. The result shares g's combinatorics; its own dual embedding is
// pre-seeded with g's embedding, so Dual(Dual(g)) rebuilds a graph whose
// embedding is identical (pointer-equal) to g's.
//
// Dual is a free function rather than a method because it returns the
// permuted instantiation Graph[F, E, V].
//
// Complexity: O(V+E) the first time an embedding is dualized, O(1) after.
func Dual[V, E, F any](g *Graph[V, E, F]) *Graph[F, E, V] {
	seed := &dualCache{}
	seed.emb.Store(g.emb)
	return &Graph[F, E, V]{
		emb:        g.dualEmbedding(),
		world:      g.world.Dual(),
		vertexData: g.faceData,
		dartData:   g.dartData,
		faceData:   g.vertexData,
		dual:       seed,
	}
}

// RightFace returns the face to the right of d: the dual vertex whose
// rotation owns d. Complexity: O(1) after the dual embedding exists.
func (g *Graph[V, E, F]) RightFace(d Dart) FaceID {
	g.checkDart(d)
	return FaceID(g.dualEmbedding().LookupIdx(d).Orbit)
}

// LeftFace returns the face to the left of d: the right face of its twin.
// Complexity: O(1) after the dual embedding exists.
func (g *Graph[V, E, F]) LeftFace(d Dart) FaceID {
	g.checkDart(d)
	return FaceID(g.dualEmbedding().LookupIdx(d.Twin()).Orbit)
}

// Boundary returns the darts along f's boundary walk: the orbit of the dual
// embedding with index f. Every dart in it has f as its right face. The
// slice is the dual embedding's backing storage: read-only.
// Complexity: O(1).
func (g *Graph[V, E, F]) Boundary(f FaceID) []Dart {
	g.checkFace(f)
	return []Dart(g.dualEmbedding().Orbit(int(f)))
}

// BoundaryVertices returns the tail of each boundary dart of f, in walk
// order. Vertices repeat where the boundary touches them more than once.
// Freshly allocated. Complexity: O(len boundary).
func (g *Graph[V, E, F]) BoundaryVertices(f FaceID) []VertexID {
	walk := g.Boundary(f)
	out := make([]VertexID, len(walk))
	for i, d := range walk {
		out[i] = g.TailOf(d)
	}
	return out
}
