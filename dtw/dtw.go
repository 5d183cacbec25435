package dtw

import (
	"math"

	"github.com/golang/geo/r2"
)

// cellFunc folds one dynamic-programming cell from the entry cost and the
// three predecessor values.
type cellFunc func(cost, diag, up, left, penalty float64) float64

// DTW computes the dynamic time warping distance between chains a and b:
// the minimum, over monotone alignments of the two index ranges, of the
// summed Euclidean distances between matched points, with SlopePenalty
// added for every insertion or deletion step. nil opts selects
// DefaultOptions.
//
// With opts.ReturnPath the optimal alignment comes back as index pairs,
// first {0 0}, last {len(a)-1 len(b)-1}. No path is returned when the
// window makes alignment impossible (distance +Inf).
//
// Complexity: O(n*m) time; O(n*m) or O(m) memory per MemoryMode.
func DTW(a, b []r2.Point, opts *Options) (float64, []Coord, error) {
	return align(a, b, opts, accumulate, true)
}

// Frechet computes the discrete Frechet distance between chains a and b:
// the minimum over monotone alignments of the largest matched Euclidean
// distance. In the walking metaphor, the shortest leash that lets a person
// and a dog traverse their chains without backing up. SlopePenalty does
// not apply; Window and path options work as in DTW.
//
// Complexity: O(n*m) time; O(n*m) or O(m) memory per MemoryMode.
func Frechet(a, b []r2.Point, opts *Options) (float64, []Coord, error) {
	return align(a, b, opts, bottleneck, false)
}

// accumulate is the DTW cell rule: pay the pair cost on top of the
// cheapest way in, surcharging the non-diagonal steps.
func accumulate(cost, diag, up, left, penalty float64) float64 {
	return cost + min3(diag, up+penalty, left+penalty)
}

// bottleneck is the discrete-Frechet cell rule: the leash must cover both
// the cheapest way in and the current pair.
func bottleneck(cost, diag, up, left, _ float64) float64 {
	return math.Max(cost, min3(diag, up, left))
}

// align runs the shared band-limited dynamic program over the two chains.
func align(a, b []r2.Point, opts *Options, cell cellFunc, penalized bool) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, nil, err
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyChain
	}
	pen := 0.0
	if penalized {
		pen = o.SlopePenalty
	}

	// 1. Row storage: the whole table for path recovery, two reused rows
	//    otherwise. Cell (0,0) is the only finite border cell.
	inf := math.Inf(1)
	full := o.MemoryMode == FullMatrix
	rows := 2
	if full {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	// 2. Fill row by row inside the band.
	for i := 1; i <= n; i++ {
		cur, prev := i, i-1
		if !full {
			cur, prev = i%2, (i-1)%2
		}
		dp[cur][0] = inf
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && abs(i-j) > o.Window {
				dp[cur][j] = inf
				continue
			}
			cost := a[i-1].Sub(b[j-1]).Norm()
			dp[cur][j] = cell(cost, dp[prev][j-1], dp[prev][j], dp[cur][j-1], pen)
		}
	}

	last := n
	if !full {
		last = n % 2
	}
	dist := dp[last][m]

	// 3. Recover the alignment only when one exists.
	var path []Coord
	if o.ReturnPath && !math.IsInf(dist, 1) {
		path = backtrack(dp, n, m, pen)
	}
	return dist, path, nil
}

// backtrack walks predecessors from (n,m) to (1,1), weighting the
// non-diagonal candidates exactly as the fill did and preferring the
// diagonal on ties.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	path = append(path, Coord{I: i - 1, J: j - 1})
	for i > 1 || j > 1 {
		bi, bj := i-1, j-1
		switch {
		case i == 1:
			bi, bj = i, j-1
		case j == 1:
			bi, bj = i-1, j
		default:
			best := dp[i-1][j-1]
			if dp[i-1][j]+penalty < best {
				best, bi, bj = dp[i-1][j]+penalty, i-1, j
			}
			if dp[i][j-1]+penalty < best {
				bi, bj = i, j-1
			}
		}
		i, j = bi, bj
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the smallest of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
