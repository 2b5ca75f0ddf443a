package hopcroftkarp

import (
	"math"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

const infDist = math.MaxInt32

// searcher holds the per-phase scratch state: the BFS distance layering and
// the sentinel distance for "unreachable free right-vertex", rebuilt fresh
// at the start of every phase.
type searcher struct {
	g       *graph.Graph
	left    []bool
	m       *mate.Store
	dist    []int32 // dist[v] for v on the left side
	nilDist int32   // dist[NIL]: shortest augmenting-path length this phase
}

// Match runs Hopcroft–Karp to completion on g, two-coloring it first. It
// returns ErrNotBipartite if g is not bipartite.
//
// Complexity: O(E * sqrt(V)).
func Match(g *graph.Graph) (*mate.Store, error) {
	left, err := twoColor(g)
	if err != nil {
		return nil, err
	}

	m := mate.NewStore(g.N())
	s := &searcher{g: g, left: left, m: m, dist: make([]int32, g.N())}

	for s.bfs() {
		for v := int32(0); int(v) < g.N(); v++ {
			if s.left[v] && m.Unmatched(v) {
				s.dfs(v)
			}
		}
	}

	return m, nil
}

// bfs layers left vertices by alternating-path distance from the free left
// vertices (distance 0), recording in nilDist the shortest distance at
// which a free right vertex is reached. Returns whether an augmenting path
// exists.
func (s *searcher) bfs() bool {
	queue := make([]int32, 0, s.g.N())
	nilDist := int32(infDist)

	for v := int32(0); int(v) < s.g.N(); v++ {
		if !s.left[v] {
			continue
		}
		if s.m.Unmatched(v) {
			s.dist[v] = 0
			queue = append(queue, v)
		} else {
			s.dist[v] = infDist
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if s.dist[u] >= nilDist {
			continue
		}
		for _, v := range s.g.Neighbors(u) {
			w := s.m.Mate(v)
			if w == graph.NONE {
				if nilDist == infDist {
					nilDist = s.dist[u] + 1
				}
				continue
			}
			if s.dist[w] == infDist {
				s.dist[w] = s.dist[u] + 1
				queue = append(queue, w)
			}
		}
	}

	s.nilDist = nilDist

	return nilDist != infDist
}

// dfs attempts to extend a shortest augmenting path from left-vertex u,
// pruning dist[u] to infinity on failure so later calls in this phase skip
// the dead end immediately.
func (s *searcher) dfs(u int32) bool {
	for _, v := range s.g.Neighbors(u) {
		w := s.m.Mate(v)
		wDist := s.nilDist
		if w != graph.NONE {
			wDist = s.dist[w]
		}
		if wDist == s.dist[u]+1 {
			if w == graph.NONE || s.dfs(w) {
				s.m.SetPair(u, v)

				return true
			}
		}
	}
	s.dist[u] = infDist

	return false
}
