package delaunay

import "sort"

// EuclideanMST returns the Euclidean minimum spanning tree of the sites:
// the tree edges in acceptance order (ascending length, ties in
// lexicographic edge order) and the total tree length.
//
// The Delaunay triangulation always contains the Euclidean MST, so the
// tree is found by Kruskal's sweep restricted to the triangulation edges:
// sort them by length, then join components through a union-find with path
// compression and union by rank. Triangulate's validation guarantees a
// connected edge set, so the sweep always finishes with NumSites-1 edges.
//
// Complexity: O(E log E) time, O(V + E) memory.
func (t *Triangulation) EuclideanMST() ([][2]int, float64) {
	// 1. Measure every edge once and sort indices, not edges: the stable
	//    sort then keeps lexicographic order between equal lengths.
	length := make([]float64, len(t.edges))
	order := make([]int, len(t.edges))
	for i, e := range t.edges {
		length[i] = t.sites[e[1]].Sub(t.sites[e[0]]).Norm()
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return length[order[i]] < length[order[j]] })

	// 2. Union-find over site indices. Find compresses paths iteratively.
	parent := make([]int, len(t.sites))
	rank := make([]int, len(t.sites))
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	// 3. Sweep edges by ascending length, keeping every component join.
	tree := make([][2]int, 0, len(t.sites)-1)
	var total float64
	for _, k := range order {
		u, v := find(t.edges[k][0]), find(t.edges[k][1])
		if u == v {
			continue
		}
		// Hang the shallower root under the deeper one.
		if rank[u] < rank[v] {
			u, v = v, u
		}
		parent[v] = u
		if rank[u] == rank[v] {
			rank[u]++
		}
		tree = append(tree, t.edges[k])
		total += length[k]
		if len(tree) == len(t.sites)-1 {
			break
		}
	}
	return tree, total
}
