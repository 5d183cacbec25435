// Package interval provides closed real intervals with the algebra the
// geometry packages need: intersection with a hit flag, union, clamping
// and shifting.
//
// The representation is golang/geo's r1.Interval, so all of its predicates
// (Contains, Intersects, Length, Center, ...) are available on Interval
// directly. Endpoints are closed: touching intervals intersect in a
// degenerate point interval.
//
// All values are immutable; every operation returns a new Interval.
package interval
