package dtw

import "errors"

// Sentinel errors for chain matching.
var (
	// ErrEmptyChain indicates one or both input chains carry no points.
	ErrEmptyChain = errors.New("dtw: input chains must be non-empty")
	// ErrBadWindow indicates a Window below -1, which permits no alignment at all.
	ErrBadWindow = errors.New("dtw: Window must be -1 (unlimited) or non-negative")
	// ErrPathNeedsMatrix indicates ReturnPath with a storage mode that drops rows.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how the dynamic-programming table is stored.
type MemoryMode int

const (
	// FullMatrix keeps the whole (n+1)x(m+1) table and supports path
	// recovery. Memory: O(n*m).
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the current and previous row: distance only.
	// Memory: O(m).
	TwoRows
)

// Coord is one aligned index pair of a warping path: a[I] matched to b[J].
type Coord struct {
	I, J int
}

// Options tunes DTW and Frechet. The zero value is not the default; use
// DefaultOptions (a zero Window forbids any alignment of chains of
// different lengths).
type Options struct {
	// Window caps |i-j| over the alignment (the Sakoe-Chiba band); -1
	// disables the cap. A band narrower than the length difference makes
	// alignment impossible and the distance comes back +Inf.
	Window int

	// SlopePenalty is the extra cost per insertion or deletion step. DTW
	// only; the bottleneck measure ignores it.
	SlopePenalty float64

	// ReturnPath requests the warping path along with the distance.
	// Requires FullMatrix.
	ReturnPath bool

	// MemoryMode selects FullMatrix or TwoRows storage.
	MemoryMode MemoryMode
}

// DefaultOptions returns the permissive setup: unlimited window, no slope
// penalty, no path, full matrix.
func DefaultOptions() Options {
	return Options{Window: -1, MemoryMode: FullMatrix}
}

// validate rejects option combinations no computation can honor.
func (o Options) validate() error {
	if o.Window < -1 {
		return ErrBadWindow
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}
	return nil
}
