package planargraph

import (
	"fmt"

	"github.com/msakai/hgeometry/permutation"
)

// Build wraps a dart embedding into a Graph with zero-valued payloads of
// the given types. The embedding is trusted: its orbits must be the
// counterclockwise rotations of a connected planar multigraph (Build cannot
// verify planarity and does not try). Face count comes from Euler's
// formula, F = E - V + 2.
//
// Panics when the embedding is nil, empty, of odd size (such a domain
// cannot pair into arcs), or too sparse to be connected (fewer than V-1
// arcs). Complexity: O(V+E) allocation, no traversal.
func Build[V, E, F any](emb *permutation.Permutation[Dart]) *Graph[V, E, F] {
	if emb == nil || emb.Size() == 0 {
		panic(panicNilEmbedding)
	}
	if emb.Size()%2 != 0 {
		panic(panicOddEmbedding)
	}

	nd := emb.Size()
	nv := emb.NumOrbits()
	nf := nd/2 - nv + 2
	if nf < 1 {
		panic(panicSparseEmbedding)
	}
	return &Graph[V, E, F]{
		emb:        emb,
		world:      WorldPrimal,
		vertexData: make([]V, nv),
		dartData:   make([]E, nd),
		faceData:   make([]F, nf),
		dual:       &dualCache{},
	}
}

// New is Build with unit payloads, for purely combinatorial use.
func New(emb *permutation.Permutation[Dart]) *Graph[struct{}, struct{}, struct{}] {
	return Build[struct{}, struct{}, struct{}](emb)
}

// FromRotation builds a graph from one counterclockwise dart rotation per
// vertex. Unlike Build, this is the validated entry point for structure
// assembled outside the package: rotations must cover every dart of
// [0, 2E) exactly once and every vertex must have at least one dart.
// Malformed input is reported with a sentinel error, never panicked on.
//
// Complexity: O(V+E).
func FromRotation[V, E, F any](rotations [][]Dart) (*Graph[V, E, F], error) {
	// 1. Size the dart set and reject the cheap structural defects.
	n := 0
	for _, rot := range rotations {
		n += len(rot)
	}
	if n == 0 {
		return nil, ErrEmptyRotation
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("planargraph: %d darts: %w", n, ErrOddDartCount)
	}

	// 2. Insist the rotations partition [0, 2E): dense, no repeats, no
	//    dart-less vertices.
	seen := make([]bool, n)
	for v, rot := range rotations {
		if len(rot) == 0 {
			return nil, fmt.Errorf("planargraph: vertex %d: %w", v, ErrIsolatedVertex)
		}
		for _, d := range rot {
			id := d.Index()
			if id < 0 || id >= n {
				return nil, fmt.Errorf("planargraph: dart %v outside [0,%d): %w", d, n, ErrInvalidRotation)
			}
			if seen[id] {
				return nil, fmt.Errorf("planargraph: dart %v repeated: %w", d, ErrInvalidRotation)
			}
			seen[id] = true
		}
	}

	// 3. Fewer than V-1 arcs cannot connect V vertices; reject before Build
	//    so the trusted path never sees a negative face count.
	if n/2 < len(rotations)-1 {
		return nil, fmt.Errorf("planargraph: %d arcs cannot connect %d vertices: %w", n/2, len(rotations), ErrDisconnected)
	}

	// 4. Hand the validated cycles to the permutation engine.
	return Build[V, E, F](permutation.FromCycles(rotations)), nil
}

// Embedding exposes the underlying dart permutation. It is shared, not
// copied; the permutation is immutable.
func (g *Graph[V, E, F]) Embedding() *permutation.Permutation[Dart] { return g.emb }

// World reports which side of duality this graph lives on.
func (g *Graph[V, E, F]) World() World { return g.world }

// NumVertices returns V, the number of embedding orbits. Complexity: O(1).
func (g *Graph[V, E, F]) NumVertices() int { return g.emb.NumOrbits() }

// NumDarts returns 2E. Complexity: O(1).
func (g *Graph[V, E, F]) NumDarts() int { return g.emb.Size() }

// NumEdges returns E, the number of arcs. Complexity: O(1).
func (g *Graph[V, E, F]) NumEdges() int { return g.emb.Size() / 2 }

// NumFaces returns F = E - V + 2 by Euler's formula, valid for connected
// planar embeddings. Complexity: O(1).
func (g *Graph[V, E, F]) NumFaces() int { return len(g.faceData) }

// Vertices lists all vertex ids in increasing order. Freshly allocated.
func (g *Graph[V, E, F]) Vertices() []VertexID {
	out := make([]VertexID, g.NumVertices())
	for i := range out {
		out[i] = VertexID(i)
	}
	return out
}

// Darts lists all darts in identity order: arc-major, Forward before
// Backward. Freshly allocated.
func (g *Graph[V, E, F]) Darts() []Dart {
	out := make([]Dart, g.NumDarts())
	for i := range out {
		out[i] = DartFromIndex(i)
	}
	return out
}

// Edges lists one canonical representative per arc: its Forward dart.
// Freshly allocated.
func (g *Graph[V, E, F]) Edges() []Dart {
	out := make([]Dart, g.NumEdges())
	for i := range out {
		out[i] = Dart{Arc: Arc(i), Dir: Forward}
	}
	return out
}

// Faces lists all face ids in increasing order. Freshly allocated.
func (g *Graph[V, E, F]) Faces() []FaceID {
	out := make([]FaceID, g.NumFaces())
	for i := range out {
		out[i] = FaceID(i)
	}
	return out
}

// VertexData returns the payload attached to v. Panics when v is out of
// range. Complexity: O(1).
func (g *Graph[V, E, F]) VertexData(v VertexID) V {
	g.checkVertex(v)
	return g.vertexData[v]
}

// DartData returns the payload attached to d. Payloads are per dart, so the
// two darts of an arc may carry distinct values. Panics when d is out of
// range. Complexity: O(1).
func (g *Graph[V, E, F]) DartData(d Dart) E {
	g.checkDart(d)
	return g.dartData[d.Index()]
}

// FaceData returns the payload attached to f. Panics when f is out of
// range. Complexity: O(1).
func (g *Graph[V, E, F]) FaceData(f FaceID) F {
	g.checkFace(f)
	return g.faceData[f]
}

// VertexValues returns a copy of all vertex payloads, indexed by VertexID.
func (g *Graph[V, E, F]) VertexValues() []V {
	out := make([]V, len(g.vertexData))
	copy(out, g.vertexData)
	return out
}

// DartValues returns a copy of all dart payloads, indexed by dart identity.
func (g *Graph[V, E, F]) DartValues() []E {
	out := make([]E, len(g.dartData))
	copy(out, g.dartData)
	return out
}

// FaceValues returns a copy of all face payloads, indexed by FaceID.
func (g *Graph[V, E, F]) FaceValues() []F {
	out := make([]F, len(g.faceData))
	copy(out, g.faceData)
	return out
}

// WithVertexData returns a graph sharing this embedding with vs attached as
// vertex payloads. The slice is copied; len(vs) must equal NumVertices.
func (g *Graph[V, E, F]) WithVertexData(vs []V) (*Graph[V, E, F], error) {
	if len(vs) != g.NumVertices() {
		return nil, fmt.Errorf("planargraph: %d values for %d vertices: %w", len(vs), g.NumVertices(), ErrDataLength)
	}
	ng := g.clone()
	ng.vertexData = make([]V, len(vs))
	copy(ng.vertexData, vs)
	return ng, nil
}

// WithDartData returns a graph sharing this embedding with es attached as
// per-dart payloads. The slice is copied; len(es) must equal NumDarts.
func (g *Graph[V, E, F]) WithDartData(es []E) (*Graph[V, E, F], error) {
	if len(es) != g.NumDarts() {
		return nil, fmt.Errorf("planargraph: %d values for %d darts: %w", len(es), g.NumDarts(), ErrDataLength)
	}
	ng := g.clone()
	ng.dartData = make([]E, len(es))
	copy(ng.dartData, es)
	return ng, nil
}

// WithFaceData returns a graph sharing this embedding with fs attached as
// face payloads. The slice is copied; len(fs) must equal NumFaces.
func (g *Graph[V, E, F]) WithFaceData(fs []F) (*Graph[V, E, F], error) {
	if len(fs) != g.NumFaces() {
		return nil, fmt.Errorf("planargraph: %d values for %d faces: %w", len(fs), g.NumFaces(), ErrDataLength)
	}
	ng := g.clone()
	ng.faceData = make([]F, len(fs))
	copy(ng.faceData, fs)
	return ng, nil
}

// clone copies the graph header. Embedding, payload slices and the dual
// cache stay shared; callers replace exactly one payload slice.
func (g *Graph[V, E, F]) clone() *Graph[V, E, F] {
	return &Graph[V, E, F]{
		emb:        g.emb,
		world:      g.world,
		vertexData: g.vertexData,
		dartData:   g.dartData,
		faceData:   g.faceData,
		dual:       g.dual,
	}
}

// checkVertex panics when v does not belong to this graph.
func (g *Graph[V, E, F]) checkVertex(v VertexID) {
	if int(v) < 0 || int(v) >= g.NumVertices() {
		panic(fmt.Sprintf("%s: %v, graph has %d vertices", panicVertexRange, v, g.NumVertices()))
	}
}

// checkFace panics when f does not belong to this graph.
func (g *Graph[V, E, F]) checkFace(f FaceID) {
	if int(f) < 0 || int(f) >= g.NumFaces() {
		panic(fmt.Sprintf("%s: %v, graph has %d faces", panicFaceRange, f, g.NumFaces()))
	}
}

// checkDart panics when d's identity does not belong to this graph.
func (g *Graph[V, E, F]) checkDart(d Dart) {
	if id := d.Index(); id < 0 || id >= g.NumDarts() {
		panic(fmt.Sprintf("%s: %v, graph has %d darts", panicDartRange, d, g.NumDarts()))
	}
}
