// Package sites generates deterministic point sets for triangulation
// demos and tests: uniform random scatters, regular rings and jittered
// grids, all confined to a configurable bounding box.
//
// Determinism is the default. A generator called without WithSeed or
// WithRand draws from a fixed-seed source, so repeated calls yield the
// same sites; varied output is strictly opt-in. Ring and Grid produce
// degenerate configurations on purpose (cocircular points, aligned cell
// centers); pass WithJitter to nudge them into general position before
// handing the set to a triangulator.
//
// Emission order is stable: Random in draw order, Ring counterclockwise
// from the top, Grid row-major.
package sites
