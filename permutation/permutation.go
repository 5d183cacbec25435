package permutation

import "fmt"

// FromCycles builds a Permutation from an explicit cycle decomposition.
// With n the total number of elements across all cycles, the cycles must
// partition the domain: every identity in [0, n) appears in exactly one
// cycle at exactly one position. Empty cycles are ignored. The input slices
// are copied; later mutation of them cannot affect the permutation.
//
// Panics when the input is empty or the partition precondition is broken
// (identity out of range, identity seen twice). Malformed input is a
// programmer error and is never silently repaired.
//
// Complexity: O(n) time, O(n) memory.
func FromCycles[T Element](cycles [][]T) *Permutation[T] {
	// 1. The domain size is the sum of the cycle lengths.
	n := 0
	for _, c := range cycles {
		n += len(c)
	}
	if n == 0 {
		panic(panicEmptyDomain)
	}

	// 2. Copy each cycle into an orbit and fill the reverse index, insisting
	//    every identity in [0, n) is seen exactly once.
	p := &Permutation[T]{
		orbits:  make([]Orbit[T], 0, len(cycles)),
		indexes: make([]Position, n),
	}
	seen := make([]bool, n)
	for _, c := range cycles {
		if len(c) == 0 {
			continue
		}
		oid := len(p.orbits)
		orbit := make(Orbit[T], len(c))
		copy(orbit, c)
		p.orbits = append(p.orbits, orbit)
		for i, x := range orbit {
			id := x.Index()
			if id < 0 || id >= n {
				panic(boundsMsg(panicIndexRange, id, n))
			}
			if seen[id] {
				panic(fmt.Sprintf("%s: index %d", panicDuplicateIndex, id))
			}
			seen[id] = true
			p.indexes[id] = Position{Orbit: oid, Idx: i}
		}
	}
	return p
}

// FromFunction builds a Permutation by decomposing a successor function into
// its cycles. universe must list every element of the domain exactly once,
// and next must act as a bijection on it. Cycles are discovered by walking
// next from each not-yet-visited element in universe order, so orbit
// numbering is deterministic for a fixed universe order.
//
// The visited scratch is local to the call; no state is shared between
// calls. Panics when universe is empty, an identity falls outside [0, n),
// the universe does not cover the domain, or next escapes into an already
// closed cycle (i.e. is not a bijection).
//
// Complexity: O(n) time, O(n) auxiliary memory.
func FromFunction[T Element](universe []T, next func(T) T) *Permutation[T] {
	n := len(universe)
	if n == 0 {
		panic(panicEmptyDomain)
	}

	p := &Permutation[T]{indexes: make([]Position, n)}
	visited := make([]bool, n)
	covered := 0
	for _, start := range universe {
		sid := start.Index()
		if sid < 0 || sid >= n {
			panic(boundsMsg(panicIndexRange, sid, n))
		}
		if visited[sid] {
			continue
		}

		// 1. Walk the cycle starting at start until it closes.
		oid := len(p.orbits)
		orbit := Orbit[T]{start}
		visited[sid] = true
		p.indexes[sid] = Position{Orbit: oid, Idx: 0}
		for x := next(start); ; x = next(x) {
			id := x.Index()
			if id < 0 || id >= n {
				panic(boundsMsg(panicIndexRange, id, n))
			}
			if id == sid {
				break
			}
			if visited[id] {
				panic(panicNotBijective)
			}
			visited[id] = true
			p.indexes[id] = Position{Orbit: oid, Idx: len(orbit)}
			orbit = append(orbit, x)
		}

		// 2. Seal the cycle.
		p.orbits = append(p.orbits, orbit)
		covered += len(orbit)
	}

	// 3. Walking every universe entry must have covered the whole domain;
	//    a shortfall means the universe repeated an identity.
	if covered != n {
		panic(panicDuplicateIndex)
	}
	return p
}

// Apply returns the successor of x within its orbit. Panics when x's
// identity lies outside the domain. Complexity: O(1).
func (p *Permutation[T]) Apply(x T) T {
	pos := p.lookup(x)
	orbit := p.orbits[pos.Orbit]
	return orbit[(pos.Idx+1)%len(orbit)]
}

// ApplyInverse returns the predecessor of x within its orbit. Panics when
// x's identity lies outside the domain. Complexity: O(1).
func (p *Permutation[T]) ApplyInverse(x T) T {
	pos := p.lookup(x)
	orbit := p.orbits[pos.Orbit]
	return orbit[(pos.Idx+len(orbit)-1)%len(orbit)]
}

// CycleOf returns the orbit that owns x. The returned slice is the
// permutation's backing storage and must be treated as read-only.
// Panics when x's identity lies outside the domain. Complexity: O(1).
func (p *Permutation[T]) CycleOf(x T) Orbit[T] {
	return p.orbits[p.lookup(x).Orbit]
}

// LookupIdx returns x's orbit coordinates: the orbit that owns it and the
// offset within that orbit. Panics when x's identity lies outside the
// domain. Complexity: O(1).
func (p *Permutation[T]) LookupIdx(x T) Position {
	return p.lookup(x)
}

// Size returns the number of elements in the domain. Complexity: O(1).
func (p *Permutation[T]) Size() int { return len(p.indexes) }

// NumOrbits returns the number of cycles. Complexity: O(1).
func (p *Permutation[T]) NumOrbits() int { return len(p.orbits) }

// Orbit returns the i-th cycle, read-only. Panics when i is out of range.
func (p *Permutation[T]) Orbit(i int) Orbit[T] {
	if i < 0 || i >= len(p.orbits) {
		panic(boundsMsg(panicOrbitRange, i, len(p.orbits)))
	}
	return p.orbits[i]
}

// Orbits returns the cycles in orbit order. The outer slice is freshly
// allocated; the inner slices share backing with the permutation and are
// read-only. Complexity: O(number of orbits).
func (p *Permutation[T]) Orbits() []Orbit[T] {
	out := make([]Orbit[T], len(p.orbits))
	copy(out, p.orbits)
	return out
}

// Elems returns every element of the domain in orbit-major order: orbit 0
// first, each orbit in cycle order. The result is freshly allocated.
// Complexity: O(n).
func (p *Permutation[T]) Elems() []T {
	out := make([]T, 0, len(p.indexes))
	for _, orbit := range p.orbits {
		out = append(out, orbit...)
	}
	return out
}

// lookup resolves x's position, panicking on out-of-domain identities.
func (p *Permutation[T]) lookup(x T) Position {
	id := x.Index()
	if id < 0 || id >= len(p.indexes) {
		panic(boundsMsg(panicIndexRange, id, len(p.indexes)))
	}
	return p.indexes[id]
}

// boundsMsg renders a bounds panic with the offending index and the domain.
func boundsMsg(prefix string, got, n int) string {
	return fmt.Sprintf("%s: index %d, domain [0,%d)", prefix, got, n)
}
