// Package polygon provides simple polygons with the classic O(n)
// computations over their vertex ring: signed area and orientation,
// centroid, bounding box, and ray-crossing point location with boundary
// detection.
//
// A Polygon is an ordered vertex ring, implicitly closed. Simplicity (no
// self-intersection) is a documented precondition; New validates only the
// cheap structural defects (too few vertices, consecutive duplicates).
// Both winding orders are accepted everywhere: SignedArea exposes the
// orientation, IsCCW tests it and Reverse flips it.
//
// Locate classifies a query point as Inside, OnBoundary or Outside. The
// boundary test runs per edge with a configurable absolute tolerance
// (WithBoundaryEpsilon); interior parity comes from a rightward
// ray-crossing walk with the half-open vertex rule, so results are
// consistent for any simple polygon, convex or not.
//
// All values are immutable; construction copies its input slice.
package polygon
