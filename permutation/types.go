// Package permutation defines the core types and panic messages for the
// permutation subpackage of github.com/msakai/hgeometry.
package permutation

// Element is the single demand a Permutation places on its element type:
// a dense identity in [0, n), where n is the size of the domain the
// permutation acts on. Identities must be collision-free across the domain.
type Element interface {
	// Index returns the element's dense identity in [0, n).
	Index() int
}

// Orbit is one cycle of a permutation. Order is meaningful: the element at
// position i maps to the element at position (i+1) % len(orbit).
type Orbit[T Element] []T

// Position locates an element inside a Permutation: which orbit owns it and
// at which offset it sits.
type Position struct {
	// Orbit is the index of the owning orbit, in [0, NumOrbits()).
	Orbit int
	// Idx is the offset within that orbit, in [0, len(orbit)).
	Idx int
}

// Permutation is a permutation of a dense domain, stored as disjoint orbits
// plus a reverse index from element identity to orbit coordinates.
// The zero value is not usable; build with FromCycles or FromFunction.
// A Permutation is immutable once built and safe for concurrent readers.
type Permutation[T Element] struct {
	orbits  []Orbit[T]
	indexes []Position
}

// Internal panic messages (no magic strings). Constructors and queries panic
// only on contract violations (programmer error), never on valid input.
const (
	panicEmptyDomain    = "permutation: domain must contain at least one element"
	panicIndexRange     = "permutation: element index out of domain range"
	panicDuplicateIndex = "permutation: duplicate element index in domain"
	panicNotBijective   = "permutation: successor function is not a bijection on the universe"
	panicOrbitRange     = "permutation: orbit index out of range"
)
