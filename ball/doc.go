// Package ball provides closed disks in the plane and the closed-form
// predicates built on them: containment, boundary classification,
// circumdisks, the in-circle test and line/segment intersection.
//
// A Ball stores its center and squared radius, so containment and location
// tests never take a square root and stay exact for integer coordinates.
// Construction is direct (New), from a diameter (FromDiametralPoints) or as
// the circumdisk of three points (FromBoundaryPoints); the latter is what
// the delaunay package feeds its empty-circle checks with.
//
// Boundary classification (Locate) and the in-circle determinant (InDisk)
// take an explicit absolute tolerance; DefaultEpsilon suits unit-scale
// coordinates, 0 gives exact comparisons. All predicates use plain float64
// arithmetic: inputs in general position classify reliably, and robustness
// under near-degeneracy is the caller's concern.
//
// All values are immutable and safe for concurrent use.
package ball
