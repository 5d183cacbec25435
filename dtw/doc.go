// Package dtw measures how similar two polygonal chains are when one may
// locally run faster or slower than the other. Both measures align the
// chains monotonically, matching every point of each chain to at least one
// point of the other without ever stepping backwards, and both are driven
// by the plain Euclidean distance between matched points.
//
// DTW sums the matched distances over the best alignment, optionally
// surcharging every non-diagonal step through Options.SlopePenalty, which
// makes it a total-effort measure: long chains accumulate cost even when
// they stay close. Frechet takes the maximum instead of the sum, the
// classic shortest-leash reading, so it reports the single worst moment of
// the best alignment and ignores SlopePenalty entirely.
//
// Options.Window restricts the alignment to a Sakoe-Chiba band: matched
// indices may differ by at most Window, which cuts the effective work on
// long, roughly synchronized chains and returns +Inf when the band is too
// narrow to bridge the length difference. MemoryMode trades the full
// dynamic-programming table (required for ReturnPath) against a rolling
// pair of rows that holds O(len(b)) floats.
package dtw
