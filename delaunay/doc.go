// Package delaunay triangulates planar point sets with the naive
// empty-circumdisk rule: sites p and q are joined exactly when some third
// site r closes a circumdisk of p, q, r that no other site lies strictly
// inside of. Every candidate disk is tested against every site, so
// Triangulate costs O(n^4) and is meant for small inputs, fixtures and as
// an oracle for faster triangulators, not for production point clouds.
//
// The result is exposed two ways: directly, as counterclockwise neighbor
// rings and an edge list on Triangulation, and structurally, via
// PlanarGraph, which reinterprets the rings as a rotation system and hands
// it to the planargraph package. From there faces, boundary walks and the
// dual (the Voronoi adjacency) come for free.
//
// Correctness leans on general position: with four cocircular sites the
// edge rule can emit crossing edges, and the planar-graph view of such a
// result is not an embedding. Exact duplicates and fully collinear inputs
// are rejected with sentinel errors; everything subtler is governed by
// Options.Epsilon, whose band decides when a site counts as strictly
// inside a disk.
package delaunay
