package graph

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// New canonicalizes edges into a simple, undirected Graph over [0, n).
//
// Endpoints outside [0, n) and self-loops (u==v) are silently dropped, since
// upstream readers tolerate stray tokens in hand-edited fixture files.
// Parallel edges are coalesced. Neighbor lists are sorted ascending for
// determinism.
//
// Complexity: O(n + E) to build per-vertex sets, O(E log E) amortized to
// sort the result.
func New(n int, edges [][2]int32) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	sets := make([]mapset.Set[int32], n)
	for i := range sets {
		sets[i] = mapset.NewThreadUnsafeSet[int32]()
	}

	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		if u < 0 || int(u) >= n || v < 0 || int(v) >= n {
			continue
		}
		sets[u].Add(v)
		sets[v].Add(u)
	}

	adj := make([][]int32, n)
	for i, s := range sets {
		nbrs := s.ToSlice()
		sort.Slice(nbrs, func(a, b int) bool { return nbrs[a] < nbrs[b] })
		adj[i] = nbrs
	}

	return &Graph{n: n, adj: adj}, nil
}
