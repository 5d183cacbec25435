// Package planargraph represents connected planar multigraphs as rotation
// systems over darts, with constant-time navigation and an O(V+E) derived
// dual graph.
//
// What
//
//   - Every undirected edge (arc) is split into two opposite half-edges
//     (darts): the Forward dart of arc a has identity 2a, the Backward dart
//     2a+1, and Twin flips between them.
//   - The embedding is a single permutation of all darts whose orbits are
//     the vertices: orbit v lists the darts with tail v in counterclockwise
//     order around v. Vertices, edges and faces are never stored separately;
//     they are all derived from that one permutation.
//   - Faces come from the dual permutation d -> apply(embedding, twin(d)),
//     computed lazily once per embedding and cached. Dual builds the full
//     dual graph: faces become vertices, vertices become faces, payloads
//     swap roles, dart data rides along unchanged.
//   - Payloads of arbitrary type attach per vertex, per dart and per face
//     (Graph[V, E, F]); attachment returns a new graph sharing the
//     embedding. Graphs are immutable values, safe for concurrent readers.
//
// Why
//
//	A rotation system pins down a graph embedding in the oriented plane up
//	to homeomorphism, so face structure, boundary walks and duality are
//	combinatorial facts, free of coordinates. Positions, when needed, live
//	in vertex payloads; the delaunay package produces exactly such graphs.
//
// Contract
//
//	Build trusts its embedding: orbits must be genuine counterclockwise
//	rotations of a connected planar multigraph for face queries and Euler
//	counts to mean anything. Construction never verifies planarity;
//	FromRotation validates the dart partition and reports malformed input
//	with sentinel errors, and Validate runs the deeper O(V+E) checks
//	(connectivity, genus zero) on demand for rotation systems from
//	untrusted sources. Loops and parallel arcs are fine. An isolated
//	vertex is not representable: every dart needs an arc, so the smallest
//	graphs are a single loop or a single two-vertex arc.
//
// Complexity (V vertices, E arcs, n = 2E darts)
//
//   - Build: O(V+E); first face/dual query: O(n) once per embedding
//   - TailOf / HeadOf / NextIncidentDart / LeftFace / RightFace: O(1)
//   - IncidentDarts / Boundary: O(1) (shared, read-only slices)
//
// The fixed fixture used across this package's tests is the four-vertex,
// six-arc multigraph with a loop and a pendant arc; see example_test.go for
// the worked rotation system and its dual.
package planargraph
