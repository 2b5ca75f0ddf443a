package blossomsimple

import (
	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

const (
	unlabeled int8 = 0
	outer     int8 = 1
	inner     int8 = 2
)

// search holds one root's scratch state: the virtual union-find base[] array,
// the alternating-tree parent[] links, and the outer/inner label[] array.
// All three are rebuilt from scratch at the start of every root search.
type search struct {
	g      *graph.Graph
	m      *mate.Store
	base   []int32
	parent []int32
	label  []int8
}

func newSearch(g *graph.Graph, m *mate.Store) *search {
	return &search{
		g:      g,
		m:      m,
		base:   make([]int32, g.N()),
		parent: make([]int32, g.N()),
		label:  make([]int8, g.N()),
	}
}

func (s *search) reset(root int32) {
	for i := range s.base {
		s.base[i] = int32(i)
		s.parent[i] = graph.NONE
		s.label[i] = unlabeled
	}
	s.label[root] = outer
}

// findBase returns the current virtual-blossom representative of v, with
// path compression.
func (s *search) findBase(v int32) int32 {
	if s.base[v] != v {
		s.base[v] = s.findBase(s.base[v])
	}

	return s.base[v]
}

// findBlossomBase marks every ancestor of v (by current base) walking up
// through mate/parent, then scans w's ancestors the same way for the first
// marked base. Falls back to findBase(v) if the two walks never meet, which
// signals the trees have diverged rather than closed a cycle.
func (s *search) findBlossomBase(v, w int32) int32 {
	marked := make(map[int32]bool)
	u := v
	for {
		b := s.findBase(u)
		marked[b] = true
		if s.m.Mate(b) == graph.NONE {
			break
		}
		pm := s.parent[s.m.Mate(b)]
		if pm == graph.NONE {
			break
		}
		u = pm
	}

	u = w
	for {
		b := s.findBase(u)
		if marked[b] {
			return b
		}
		if s.m.Mate(b) == graph.NONE {
			break
		}
		pm := s.parent[s.m.Mate(b)]
		if pm == graph.NONE {
			break
		}
		u = pm
	}

	return s.findBase(v)
}

// markBlossom walks u's alternating path up toward lca, unioning every
// vertex it crosses into lca's base, re-pointing each outer vertex on the
// path at child (the vertex across the blossom edge, then each previous
// inner vertex) so augmentPath can later cross the blossom, and promoting
// any inner vertex found along the way to outer (enqueuing it for further
// exploration).
func (s *search) markBlossom(u, lca, child int32, queue *[]int32) {
	for s.findBase(u) != lca {
		bu := s.findBase(u)
		mu := s.m.Mate(u)
		bw := s.findBase(mu)

		s.base[bu] = lca
		s.base[bw] = lca
		s.parent[u] = child
		child = mu

		if s.label[bw] == inner {
			s.label[bw] = outer
			*queue = append(*queue, bw)
		}

		if s.parent[mu] == graph.NONE {
			break
		}
		u = s.parent[mu]
	}
}

func (s *search) contractBlossom(v, w int32, queue *[]int32) {
	lca := s.findBlossomBase(v, w)
	s.markBlossom(v, lca, w, queue)
	s.markBlossom(w, lca, v, queue)
}

// findAugmentingPath grows an alternating tree from root by BFS, returning
// the free vertex an augmenting path terminates at, or graph.NONE if the
// tree exhausts without reaching one.
func (s *search) findAugmentingPath(root int32) int32 {
	s.reset(root)
	queue := []int32{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, w := range s.g.Neighbors(v) {
			if s.findBase(w) == s.findBase(v) {
				continue
			}

			switch s.label[w] {
			case unlabeled:
				if s.m.Unmatched(w) {
					s.parent[w] = v

					return w
				}
				mw := s.m.Mate(w)
				s.label[w] = inner
				s.label[mw] = outer
				s.parent[w] = v
				s.parent[mw] = w
				queue = append(queue, mw)
			case outer:
				s.contractBlossom(v, w, &queue)
			}
		}
	}

	return graph.NONE
}

// augmentPath toggles matched/unmatched status by pairs along the parent
// chain from the free endpoint v back to the search root.
func (s *search) augmentPath(v int32) {
	for s.parent[v] != graph.NONE {
		pv := s.parent[v]
		ppv := s.m.Mate(pv)
		s.m.SetPair(v, pv)
		if ppv == graph.NONE {
			break
		}
		v = ppv
	}
}

// Match runs BlossomSimple to completion on g: one alternating-tree search
// per unmatched vertex, in index order, each immediately augmented on
// success.
//
// Complexity: O(V * E).
func Match(g *graph.Graph) (*mate.Store, error) {
	n := g.N()
	m := mate.NewStore(n)
	s := newSearch(g, m)

	for v := int32(0); int(v) < n; v++ {
		if m.Unmatched(v) {
			if w := s.findAugmentingPath(v); w != graph.NONE {
				s.augmentPath(w)
			}
		}
	}

	return m, nil
}
