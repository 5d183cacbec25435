// Package box provides axis-aligned 2D boxes with the closed-form
// predicates the geometry packages need: containment, intersection with a
// hit flag, union, corner enumeration and per-axis interval projections.
//
// The representation is golang/geo's r2.Rect (a pair of r1 intervals), so
// its predicates (ContainsPoint, Intersects, Center, Size, ClampPoint, ...)
// are available on Box directly. Boxes are immutable values.
package box
