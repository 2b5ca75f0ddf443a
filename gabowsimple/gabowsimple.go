package gabowsimple

import (
	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

const (
	unlabeled int8 = 0
	even      int8 = 1
	odd       int8 = 2
)

// bridgeEdge is a (from, to) pair queued for later scanning — the same
// role level_queue plays in the scaling engine, but flattened to one LIFO
// stack since this engine has no Δ-level buckets.
type bridgeEdge struct{ from, to int32 }

// matePair is a (u, v) assignment applied to mate.Store during augmentation.
type matePair struct{ u, v int32 }

// search holds one outer iteration's forest: EVEN/ODD labels, tree parent
// links, the virtual union-find base array, the interleaved-LCA tag
// scratch, and the bridge fields recorded when a vertex is absorbed into a
// blossom. Every field is rebuilt from scratch at the start of reset.
type search struct {
	g         *graph.Graph
	m         *mate.Store
	n         int
	label     []int8
	parent    []int32
	base      []int32
	bridgeSrc []int32
	bridgeTgt []int32
	lcaTag1   []int32
	lcaTag2   []int32
	epoch     int32
}

func newSearch(g *graph.Graph, m *mate.Store) *search {
	n := g.N()

	return &search{
		g: g, m: m, n: n,
		label:     make([]int8, n),
		parent:    make([]int32, n),
		base:      make([]int32, n),
		bridgeSrc: make([]int32, n),
		bridgeTgt: make([]int32, n),
		lcaTag1:   make([]int32, n),
		lcaTag2:   make([]int32, n),
	}
}

func (s *search) reset() {
	for i := 0; i < s.n; i++ {
		s.label[i] = unlabeled
		s.parent[i] = graph.NONE
		s.base[i] = int32(i)
		s.bridgeSrc[i] = graph.NONE
		s.bridgeTgt[i] = graph.NONE
		s.lcaTag1[i] = 0
		s.lcaTag2[i] = 0
	}
	s.epoch = 0
}

// findBase returns v's current virtual-blossom representative, with
// path-halving compression.
func (s *search) findBase(v int32) int32 {
	for s.base[v] != v {
		s.base[v] = s.base[s.base[v]]
		v = s.base[v]
	}

	return v
}

func (s *search) isRoot(v int32) bool {
	mv := s.m.Mate(v)

	return mv == graph.NONE || s.parent[mv] == graph.NONE
}

// findLCA advances two tags alternately up from u and v along
// find_base(parent[mate[·]]) until one lands on a vertex already carrying
// the other's tag (the LCA), or both walks reach a tree root first (the two
// trees are disjoint, signaling an augmenting path spans two roots).
func (s *search) findLCA(u, v int32) int32 {
	s.epoch++
	ep := s.epoch
	hx := s.findBase(u)
	hy := s.findBase(v)
	s.lcaTag1[hx] = ep
	s.lcaTag2[hy] = ep

	for {
		if s.lcaTag1[hy] == ep {
			return hy
		}
		if s.lcaTag2[hx] == ep {
			return hx
		}
		hxRoot := s.isRoot(hx)
		hyRoot := s.isRoot(hy)
		if hxRoot && hyRoot {
			return graph.NONE
		}
		if !hxRoot {
			hx = s.findBase(s.parent[s.m.Mate(hx)])
			s.lcaTag1[hx] = ep
		}
		if !hyRoot {
			hy = s.findBase(s.parent[s.m.Mate(hy)])
			s.lcaTag2[hy] = ep
		}
	}
}

// shrinkPath walks from x up to lca, unioning every vertex crossed into
// lca's base, recording the bridge (x, y) on each absorbed former-ODD
// vertex, promoting it to EVEN, and enqueuing its neighbor edges.
func (s *search) shrinkPath(lca, x, y int32, queue *[]bridgeEdge) {
	v := s.findBase(x)
	for v != lca {
		s.base[v] = lca
		mv := s.m.Mate(v)
		s.base[mv] = lca

		s.bridgeSrc[mv] = x
		s.bridgeTgt[mv] = y
		s.label[mv] = even

		for _, w := range s.g.Neighbors(mv) {
			if w == s.m.Mate(mv) {
				continue
			}
			bw := s.findBase(w)
			if s.label[bw] == odd {
				continue
			}
			*queue = append(*queue, bridgeEdge{mv, w})
		}

		v = s.findBase(s.parent[mv])
	}
}

// findAugmentingPath grows a forest from every currently-free vertex at
// once. It returns the discovery edge (z, u) an augmenting path was found
// across, or (graph.NONE, graph.NONE) if the forest exhausts.
func (s *search) findAugmentingPath() (int32, int32) {
	s.reset()

	var queue []bridgeEdge
	for v := int32(0); int(v) < s.n; v++ {
		if s.m.Unmatched(v) {
			s.label[v] = even
			for _, u := range s.g.Neighbors(v) {
				queue = append(queue, bridgeEdge{v, u})
			}
		}
	}

	for len(queue) > 0 {
		e := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		z, u := e.from, e.to

		bz, bu := s.findBase(z), s.findBase(u)
		if s.label[bz] != even {
			z, u = u, z
			bz, bu = bu, bz
		}
		if bz == bu || s.label[bz] != even {
			continue
		}
		if u == s.m.Mate(z) || s.label[bu] == odd {
			continue
		}

		switch s.label[bu] {
		case unlabeled:
			mv := s.m.Mate(u)
			if mv == graph.NONE {
				return z, u
			}
			s.parent[u] = z
			s.parent[mv] = u
			s.label[u] = odd
			s.label[mv] = even
			for _, w := range s.g.Neighbors(mv) {
				if w == s.m.Mate(mv) {
					continue
				}
				queue = append(queue, bridgeEdge{mv, w})
			}
		case even:
			lca := s.findLCA(z, u)
			if lca == graph.NONE {
				return z, u
			}
			s.shrinkPath(lca, z, u, &queue)
			s.shrinkPath(lca, u, z, &queue)
		}
	}

	return graph.NONE, graph.NONE
}

// tracePathTo walks from v up its tree, collecting the mate pairs that must
// be set to augment this side of the path, stopping once v reaches stop or
// a tree root. A vertex with no bridge recorded is an original EVEN: its
// (mate, parent(mate)) pair is collected and the walk continues from
// parent(mate). A vertex with a bridge recorded is a former ODD absorbed
// into a blossom: the walk first recurses from the bridge's source up to
// its mate, then crosses the bridge edge and continues from the bridge's
// target.
func (s *search) tracePathTo(v, stop int32, pairs *[]matePair) {
	for v != stop {
		if s.bridgeSrc[v] == graph.NONE {
			mv := s.m.Mate(v)
			if mv == graph.NONE {
				return
			}
			pv := s.parent[mv]
			*pairs = append(*pairs, matePair{mv, pv})
			if pv == graph.NONE {
				return
			}
			v = pv
		} else {
			bs, bt := s.bridgeSrc[v], s.bridgeTgt[v]
			s.tracePathTo(bs, s.m.Mate(v), pairs)
			*pairs = append(*pairs, matePair{bs, bt})
			v = bt
		}
	}
}

// augment traces both sides of the discovery edge (z, u) back to their
// roots and flips every mate pair found, plus the discovery edge itself.
func (s *search) augment(z, u int32) {
	var pairs []matePair
	s.tracePathTo(z, graph.NONE, &pairs)
	s.tracePathTo(u, graph.NONE, &pairs)
	pairs = append(pairs, matePair{z, u})
	for _, p := range pairs {
		s.m.SetPair(p.u, p.v)
	}
}

// Match runs GabowSimple to completion on g: repeated multi-source forest
// searches, each augmenting one shortest-available path before the forest
// is rebuilt from scratch.
//
// Complexity: O(V * E).
func Match(g *graph.Graph) (*mate.Store, error) {
	m := mate.NewStore(g.N())
	s := newSearch(g, m)

	for {
		z, u := s.findAugmentingPath()
		if z == graph.NONE {
			break
		}
		s.augment(z, u)
	}

	return m, nil
}
