// Package blossomfull computes a maximum-cardinality matching in a general
// graph using Edmonds' blossom algorithm with NetworkX-style nested
// blossom records: a single-source BFS tree grows per free vertex, every
// blossom discovered is a supernode carrying its own childs/edges cycle
// (so blossoms can nest inside blossoms), and augmentation lifts a path
// through however many levels of nesting the final blossom stack holds.
//
// This engine exists as the reference oracle other engines' results are
// checked against: it is the most literal, least optimized translation of
// the underlying theory in this module, so a second, independently-
// reasoned implementation disagreeing with gabowsimple/blossomsimple on
// any fixture is a strong signal of a bug in one of them.
package blossomfull

import (
	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

const (
	unlabeled int8 = 0
	sLabel    int8 = 1
	tLabel    int8 = 2
)

// labelEdge is the (v, w) discovery edge recorded when a vertex or
// blossom is labeled, mirroring the Python solver's labeledge dict.
type labelEdge struct{ v, w int32 }

var noEdge = labelEdge{graph.NONE, graph.NONE}

// blossom is a supernode: childs lists its sub-blossom/vertex ids in
// cycle order starting at the base, edges lists the connecting (v, w)
// pairs between consecutive childs (edges[0] is the bridge that closed
// the cycle).
type blossom struct {
	childs []int32
	edges  []labelEdge
}

type solver struct {
	g   *graph.Graph
	n   int
	m   *mate.Store
	adj [][]int32

	blos  []*blossom
	nblos int32

	inBlossom     []int32
	blossomParent []int32
	blossomBase   []int32

	label      []int8
	labelEdge_ []labelEdge
	queue      []int32
}

func newSolver(g *graph.Graph) *solver {
	n := g.N()
	adj := make([][]int32, n)
	for v := 0; v < n; v++ {
		adj[v] = append(adj[v], g.Neighbors(int32(v))...)
	}

	s := &solver{
		g: g, n: n, adj: adj,
		blos:          make([]*blossom, n),
		nblos:         int32(n),
		inBlossom:     make([]int32, n),
		blossomParent: make([]int32, n),
		blossomBase:   make([]int32, n),
	}

	return s
}

func (s *solver) isBlossom(b int32) bool { return int(b) >= s.n }

// leaves collects every trivial (non-blossom) vertex nested inside b.
func (s *solver) leaves(b int32) []int32 {
	if !s.isBlossom(b) {
		return []int32{b}
	}
	var result []int32
	stack := []int32{b}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !s.isBlossom(x) {
			result = append(result, x)
		} else {
			stack = append(stack, s.blos[x].childs...)
		}
	}

	return result
}

func (s *solver) ensure(b int32) {
	for int32(len(s.label)) <= b {
		s.label = append(s.label, unlabeled)
		s.labelEdge_ = append(s.labelEdge_, noEdge)
	}
	for int32(len(s.blossomParent)) <= b {
		s.blossomParent = append(s.blossomParent, graph.NONE)
	}
	for int32(len(s.blossomBase)) <= b {
		s.blossomBase = append(s.blossomBase, graph.NONE)
	}
	for int32(len(s.blos)) <= b {
		s.blos = append(s.blos, nil)
	}
}

func (s *solver) resetBlossoms() {
	s.nblos = int32(s.n)
	s.blos = s.blos[:s.n]
	s.label = make([]int8, s.n)
	s.labelEdge_ = make([]labelEdge, s.n)
	for i := 0; i < s.n; i++ {
		s.inBlossom[i] = int32(i)
		s.blossomBase[i] = int32(i)
		s.blossomParent[i] = graph.NONE
		s.labelEdge_[i] = noEdge
	}
	s.queue = s.queue[:0]
}

// assignLabel labels w (and its enclosing blossom) t, recording the
// discovery edge (v, w); an S-label enqueues every leaf for scanning, a
// T-label recurses to S-label the mate of the blossom's base.
func (s *solver) assignLabel(w int32, t int8, v int32) {
	b := s.inBlossom[w]
	s.ensure(b)
	s.label[b] = t
	s.label[w] = t
	if v != graph.NONE {
		e := labelEdge{v, w}
		s.labelEdge_[w] = e
		s.labelEdge_[b] = e
	} else {
		s.labelEdge_[w] = noEdge
		s.labelEdge_[b] = noEdge
	}

	switch t {
	case sLabel:
		s.queue = append(s.queue, s.leaves(b)...)
	case tLabel:
		base := s.blossomBase[b]
		s.assignLabel(s.m.Mate(base), sLabel, base)
	}
}

// scanBlossom traces from two S-vertices back toward their tree roots,
// marking visited blossoms with a breadcrumb label, until it finds the
// first one already visited from the other side (their LCA — the new
// blossom's base) or confirms v and w root different trees.
func (s *solver) scanBlossom(v, w int32) int32 {
	var path []int32
	base := int32(-2)

	for v != -2 || w != -2 {
		if v != -2 {
			b := s.inBlossom[v]
			if s.label[b] == 5 {
				base = s.blossomBase[b]
				break
			}
			path = append(path, b)
			s.label[b] = 5
			le := s.labelEdge_[b]
			if le.v == graph.NONE {
				v = -2
			} else {
				bt := s.inBlossom[le.v]
				v = s.labelEdge_[bt].v
			}
			if w != -2 {
				v, w = w, v
			}
		} else {
			v, w = w, v
		}
	}

	for _, b := range path {
		s.label[b] = sLabel
	}

	return base
}

// addBlossom folds the cycle base..v and base..w into a new supernode,
// recording the bridge edge (v, w) first and each side's alternating-path
// edges in cycle order, then relabels any absorbed T-vertex S so the BFS
// keeps exploring through it.
func (s *solver) addBlossom(base, v, w int32) {
	bb := s.inBlossom[base]
	bv := s.inBlossom[v]
	bw := s.inBlossom[w]

	bid := s.nblos
	s.nblos++
	s.ensure(bid)
	s.blos[bid] = &blossom{}
	s.blossomBase[bid] = base
	s.blossomParent[bid] = graph.NONE
	s.blossomParent[bb] = bid

	bl := s.blos[bid]
	bl.edges = append(bl.edges, labelEdge{v, w})

	cv, bcv := v, bv
	for bcv != bb {
		s.blossomParent[bcv] = bid
		bl.childs = append(bl.childs, bcv)
		bl.edges = append(bl.edges, s.labelEdge_[bcv])
		cv = s.labelEdge_[bcv].v
		bcv = s.inBlossom[cv]
	}
	bl.childs = append(bl.childs, bb)
	reverseInt32(bl.childs)
	reverseEdges(bl.edges)

	cw, bcw := w, bw
	for bcw != bb {
		s.blossomParent[bcw] = bid
		bl.childs = append(bl.childs, bcw)
		le := s.labelEdge_[bcw]
		bl.edges = append(bl.edges, labelEdge{le.w, le.v})
		cw = s.labelEdge_[bcw].v
		bcw = s.inBlossom[cw]
	}

	s.label[bid] = sLabel
	s.labelEdge_[bid] = s.labelEdge_[bb]

	for _, u := range s.leaves(bid) {
		if s.label[s.inBlossom[u]] == tLabel {
			s.queue = append(s.queue, u)
		}
		s.inBlossom[u] = bid
	}
}

func reverseInt32(a []int32) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

func reverseEdges(a []labelEdge) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
