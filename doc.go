// Package hgeometry is your in-memory playground for planar computational
// geometry — from cyclic permutations and rotation systems to Delaunay
// triangulations, point location and drawing.
//
// 🚀 What is hgeometry?
//
//	A compact, deterministic geometry kit that brings together:
//		• Cyclic permutations: orbits, apply/inverse, the engine behind embeddings
//		• Planar graphs: dart-based rotation systems, faces, duals, Euler counts
//		• Primitives: intervals, boxes, balls and simple polygons over r2 points
//		• Point location: winding-independent ray crossing with boundary tolerance
//		• Delaunay: the empty-circumdisk triangulation, naive and predictable
//		• Chain similarity: dynamic time warping and the discrete Fréchet distance
//		• Drawing: Ipe 7 documents and PNG rasters from the same page model
//
// ✨ Why choose hgeometry?
//
//   - Value-first API – immutable inputs, explicit errors, no hidden state
//   - Determinism – generators are seeded, runs reproduce bit for bit
//   - Honest numerics – epsilon policies are named, documented and test-pinned
//   - Composable – every stage hands a plain value to the next one
//
// Under the hood, everything is organized by subpackage:
//
//	permutation/ — cyclic permutations over dense index ranges, orbits & inverse
//	planargraph/ — darts, rotation systems, faces, the dual graph
//	interval/    — closed 1-D intervals on float64
//	box/         — axis-aligned 2-D boxes over r2 points
//	ball/        — disks, circumdisks & in-circle predicates
//	polygon/     — simple polygons: area, centroid, winding, point location
//	sites/       — seeded site generators: random, ring, grid
//	delaunay/    — the naive empty-disk Delaunay triangulation
//	dtw/         — chain similarity: dynamic time warping & discrete Fréchet
//	ipe/         — a partial Ipe 7 XML schema: marshal, parse, round-trip
//	render/      — raster pages and triangulations to PNG via fogleman/gg
//	cmd/hgeom/   — the command line: generate, triangulate, export, preview
//
// Quick ASCII example:
//
//	    2───3
//	   ╱ ╲ ╱
//	  0───1
//
//	four sites, five Delaunay edges, two bounded triangles and the
//	outer face: V − E + F = 4 − 5 + 3 = 2.
//
// Dive into the subpackage docs for the full contracts, epsilon rules and
// complexity notes.
//
//	go get github.com/msakai/hgeometry
package hgeometry
