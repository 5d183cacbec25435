// Package planargraph defines the id types, sentinel errors and panic
// messages shared by the planar-graph engine.
package planargraph

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/msakai/hgeometry/permutation"
)

// Sentinel errors for planargraph construction and payload attachment.
var (
	// ErrEmptyRotation indicates a rotation system without any dart.
	ErrEmptyRotation = errors.New("planargraph: rotation system must contain at least one dart")
	// ErrOddDartCount indicates a dart set of odd size, which cannot pair into arcs.
	ErrOddDartCount = errors.New("planargraph: dart count must be even to pair darts into arcs")
	// ErrInvalidRotation indicates rotation lists that do not partition the dart set.
	ErrInvalidRotation = errors.New("planargraph: rotation lists must contain every dart of [0,2E) exactly once")
	// ErrIsolatedVertex indicates a rotation list without darts; such a vertex cannot be embedded.
	ErrIsolatedVertex = errors.New("planargraph: vertex without incident darts cannot be embedded")
	// ErrDataLength indicates a payload slice whose length does not match the graph dimension.
	ErrDataLength = errors.New("planargraph: payload length must match the graph dimension")
	// ErrDisconnected indicates a rotation system with more than one component; returned by Validate.
	ErrDisconnected = errors.New("planargraph: rotation system is not connected")
	// ErrNonPlanar indicates a rotation system embedded on a higher-genus surface; returned by Validate.
	ErrNonPlanar = errors.New("planargraph: face count violates Euler's formula for the plane")
)

// Internal panic messages (no magic strings). Queries panic only on
// contract violations: ids outside the graph they are used against.
const (
	panicNilEmbedding    = "planargraph: Build: embedding must be non-nil and non-empty"
	panicOddEmbedding    = "planargraph: Build: embedding size must be even to pair darts into arcs"
	panicSparseEmbedding = "planargraph: Build: embedding has fewer arcs than a connected graph needs"
	panicVertexRange     = "planargraph: vertex id out of range"
	panicFaceRange       = "planargraph: face id out of range"
	panicDartRange       = "planargraph: dart index out of range"
)

// VertexID identifies a vertex: the index of its orbit in the embedding.
type VertexID int

// String renders the vertex as "v<id>".
func (v VertexID) String() string { return fmt.Sprintf("v%d", int(v)) }

// FaceID identifies a face: the index of its orbit in the dual embedding.
// A FaceID of a graph in world w is the VertexID of the same orbit in the
// dual graph (world w.Dual()), and vice versa.
type FaceID int

// String renders the face as "f<id>".
func (f FaceID) String() string { return fmt.Sprintf("f%d", int(f)) }

// World tags which side of duality a graph lives on. Dualization flips the
// tag; flipping twice restores it.
type World uint8

const (
	// WorldPrimal tags graphs whose vertices are the original vertices.
	WorldPrimal World = iota
	// WorldDual tags graphs whose vertices are the faces of a primal graph.
	WorldDual
)

// Dual returns the opposite world.
func (w World) Dual() World {
	if w == WorldPrimal {
		return WorldDual
	}
	return WorldPrimal
}

// String renders the world tag as "primal" or "dual".
func (w World) String() string {
	if w == WorldPrimal {
		return "primal"
	}
	return "dual"
}

// dualCache carries the lazily computed dual embedding. All graphs sharing
// an embedding share one cache, so payload attachment never forces a
// recomputation and duals can be pre-seeded.
type dualCache struct {
	emb atomic.Pointer[permutation.Permutation[Dart]]
}

// Graph is a connected planar multigraph given by its rotation system: the
// orbits of emb are the counterclockwise rotations of outgoing darts around
// each vertex. V, E and F are the payload types carried per vertex, per
// dart and per face.
//
// A Graph is an immutable value: payload attachment and dualization return
// new graphs sharing the embedding. Safe for concurrent readers.
type Graph[V, E, F any] struct {
	emb   *permutation.Permutation[Dart]
	world World

	vertexData []V
	dartData   []E
	faceData   []F

	dual *dualCache
}
