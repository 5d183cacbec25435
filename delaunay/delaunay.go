package delaunay

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/ball"
)

// Triangulation is the immutable result of Triangulate: the input sites
// plus the Delaunay adjacency over them.
type Triangulation struct {
	sites []r2.Point
	adj   [][]int  // per-site neighbor ring, counterclockwise
	edges [][2]int // {i, j} with i < j, lexicographic
}

// Triangulate computes the Delaunay triangulation of sites by exhaustion:
// two sites are joined exactly when some third site closes a circumdisk
// containing no other site strictly inside. No incremental structure, no
// flips; every candidate disk is checked against every site.
//
// The result is a proper triangulation only for sites in general position
// (no four cocircular). Exact duplicates and fully collinear input are
// rejected; any other degeneracy is accepted and resolved by Epsilon.
//
// Complexity: O(n^4). Intended for small inputs, fixtures and
// cross-validation of faster triangulators.
func Triangulate(pts []r2.Point, opts ...Option) (*Triangulation, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("delaunay: %d sites: %w", len(pts), ErrTooFewSites)
	}

	// 1. Reject exact duplicates: the edge rule would weld them to
	//    everything their twin touches.
	index := make(map[r2.Point]int, len(pts))
	for i, p := range pts {
		if j, ok := index[p]; ok {
			return nil, fmt.Errorf("delaunay: sites %d and %d both at %v: %w", j, i, p, ErrDuplicateSite)
		}
		index[p] = i
	}

	// 2. Reject fully collinear input: no triple spans a circumdisk.
	if allCollinear(pts) {
		return nil, fmt.Errorf("delaunay: %d sites: %w", len(pts), ErrCollinear)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(pts)
	sites := make([]r2.Point, n)
	copy(sites, pts)

	// 3. The edge rule, pair by pair.
	var edges [][2]int
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if delaunayEdge(sites, i, j, o.Epsilon) {
				edges = append(edges, [2]int{i, j})
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	// 4. Order every neighbor ring counterclockwise around its site.
	for v, ring := range adj {
		at := sites[v]
		sort.Slice(ring, func(x, y int) bool {
			return angleOf(sites[ring[x]].Sub(at)) < angleOf(sites[ring[y]].Sub(at))
		})
	}

	return &Triangulation{sites: sites, adj: adj, edges: edges}, nil
}

// delaunayEdge reports whether sites i and j share a Delaunay edge: some
// third site closes a circumdisk no other site lies strictly inside of.
func delaunayEdge(sites []r2.Point, i, j int, eps float64) bool {
	for k := range sites {
		if k == i || k == j {
			continue
		}
		disk, err := ball.FromBoundaryPoints(sites[i], sites[j], sites[k])
		if err != nil {
			continue // collinear triple spans no disk
		}
		if emptyDisk(disk, sites, i, j, k, eps) {
			return true
		}
	}
	return false
}

// emptyDisk reports whether no site beyond the three boundary ones lies
// strictly inside disk.
func emptyDisk(disk ball.Ball, sites []r2.Point, i, j, k int, eps float64) bool {
	for m, p := range sites {
		if m == i || m == j || m == k {
			continue
		}
		if disk.Locate(p, eps) == ball.Inside {
			return false
		}
	}
	return true
}

// allCollinear reports whether every site lies on the line through the
// first two. Duplicates are rejected beforehand, so that line exists.
func allCollinear(pts []r2.Point) bool {
	for _, p := range pts[2:] {
		if ball.TriArea(pts[0], pts[1], p) != 0 {
			return false
		}
	}
	return true
}

// angleOf returns the polar angle of v in (-pi, pi].
func angleOf(v r2.Point) float64 { return math.Atan2(v.Y, v.X) }

// NumSites returns the number of input sites.
func (t *Triangulation) NumSites() int { return len(t.sites) }

// Position returns the coordinates of site i. Panics when i is out of
// range. Complexity: O(1).
func (t *Triangulation) Position(i int) r2.Point {
	t.checkSite(i)
	return t.sites[i]
}

// Sites returns a copy of all site positions, in input order.
func (t *Triangulation) Sites() []r2.Point {
	out := make([]r2.Point, len(t.sites))
	copy(out, t.sites)
	return out
}

// Neighbors returns the site indices adjacent to i, ordered
// counterclockwise around it. Freshly allocated. Panics when i is out of
// range.
func (t *Triangulation) Neighbors(i int) []int {
	t.checkSite(i)
	out := make([]int, len(t.adj[i]))
	copy(out, t.adj[i])
	return out
}

// Edges returns every Delaunay edge as a site-index pair {i, j} with
// i < j, lexicographically ordered. Freshly allocated.
func (t *Triangulation) Edges() [][2]int {
	out := make([][2]int, len(t.edges))
	copy(out, t.edges)
	return out
}

// NumEdges returns the number of Delaunay edges.
func (t *Triangulation) NumEdges() int { return len(t.edges) }

// NumTriangles returns the number of bounded faces, E - V + 1 by Euler's
// formula. For sites in general position every bounded face is a triangle.
func (t *Triangulation) NumTriangles() int {
	return len(t.edges) - len(t.sites) + 1
}

// checkSite panics when i is not a site index of this triangulation.
func (t *Triangulation) checkSite(i int) {
	if i < 0 || i >= len(t.sites) {
		panic(fmt.Sprintf("%s: %d, triangulation has %d sites", panicSiteRange, i, len(t.sites)))
	}
}
