// Package permutation stores a permutation of a dense finite domain as its
// disjoint cycles (orbits), giving O(1) successor, predecessor and
// cycle-membership queries after an O(n) build.
//
// What
//
//   - A Permutation[T] holds two parallel views of the same bijection:
//   - orbits: the cycles themselves, each an ordered Orbit[T] slice
//   - indexes: element identity → (orbit, offset) reverse lookup
//   - Elements supply their own identity via the Element interface: a dense,
//     collision-free Index() in [0, n). That identity is the only thing the
//     engine ever asks of its element type.
//   - Construction is either explicit (FromCycles, when the caller already
//     knows the cycle structure) or functional (FromFunction, which
//     decomposes a successor function over a given universe into cycles).
//
// Why
//
//	Rotation systems, dart embeddings and other combinatorial structures are
//	permutations at heart. Storing the cycles once makes "next around the
//	orbit", "which cycle owns x" and "walk the whole cycle" constant-time,
//	which is what embedding navigation needs on its hot path.
//
// Contract
//
//	Both constructors insist the input covers the domain exactly: every
//	identity in [0, n) appears exactly once. A malformed partition is a
//	programmer error, never silently repaired; constructors panic with a
//	stable message. Query methods panic when handed an element whose
//	identity falls outside the domain.
//
// Complexity (n = domain size)
//
//   - FromCycles / FromFunction: O(n) time, O(n) memory
//   - Apply / ApplyInverse / CycleOf / LookupIdx: O(1)
//   - Elems: O(n)
//
// Permutations are immutable after construction and safe for concurrent
// readers.
package permutation
