// Package gabowscaling computes a maximum-cardinality matching in a general
// graph via Gabow's scaling technique: each outer iteration grows a
// Δ-leveled forest (phase MIN), contracts any blossom found along the way
// into a deferred "dbase" union-find so the contracted graph H's vertex
// identity stays stable for the rest of the level, then — once a shortest
// augmenting path is known to exist — searches H for one augmenting path
// (phase MAX). Only one path is taken per iteration; other vertex-disjoint
// shortest paths in H are not collected, and the next path starts from a
// fresh phase MIN.
//
// What
//
//   - Phase MIN (phase1): BFS by Δ-level using level_queue buckets; an
//     EVEN-EVEN edge runs the interleaved LCA and either shrinks a blossom
//     or (on LCA==NIL) signals a shortest augmenting path exists. Bases are
//     unioned immediately (base); the dbase contraction used to build H is
//     applied only after the whole Δ-level finishes draining, keeping H
//     stable mid-level.
//   - Phase MAX (phase2): per-root BFS over the precomputed H-adjacency,
//     with its own db2 union-find collapsing H-blossoms discovered during
//     this phase; the search stops at the first augmenting path it reaches
//     in H and hands that single path to augmentH.
//
// Determinism
//
//	Every neighbor list and h_adj list is built in a fixed order; level
//	queues are drained LIFO (pop from the end), matching the original
//	architecture's list.pop().
//
// Complexity
//
//	O(V * E): each phase1/phase2 iteration is O(E) and applies one
//	augmenting path, so up to V/2 iterations run.
package gabowscaling

import (
	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

const (
	unlabeled int8 = 0
	even      int8 = 1
	odd       int8 = 2
)

type hEdge struct{ u, w int32 }

type gPair struct{ a, b int32 }

// engine holds every array gabow_optimized_v2.py's GabowOptimized class
// holds as instance fields, split across phase-1 (forest/H-construction)
// and phase-2 (H-search) concerns. All of it is scratch, reset at the start
// of the relevant phase; only m (mate.Store) persists across iterations.
type engine struct {
	g *graph.Graph
	m *mate.Store
	n int

	// Phase 1 (MIN): Δ-leveled forest growth.
	label        []int8
	parent       []int32
	sourceBridge []int32
	targetBridge []int32
	base         []int32
	dbase        []int32
	levelQueue   [][]hEdge
	lcaTag1      []int32
	lcaTag2      []int32
	epoch        int32
	inTree       []bool
	treeNodes    []int32
	delta        int

	// Built at the end of phase 1, consumed by phase 2.
	hAdj  [][]gPair
	mateH []int32

	// Phase 2 (MAX): H-search.
	rep         []int32
	labelH      []int8
	parentHSrc  []int32
	parentHTgt  []int32
	bridgeHSrc  []int32
	bridgeHTgt  []int32
	dirH        []int8
	evenTimeH   []int32
	db2         []int32
	timeCounter int32
}

func newEngine(g *graph.Graph, m *mate.Store) *engine {
	n := g.N()
	levelQueue := make([][]hEdge, n+2)

	return &engine{
		g: g, m: m, n: n,
		label:        make([]int8, n),
		parent:       make([]int32, n),
		sourceBridge: make([]int32, n),
		targetBridge: make([]int32, n),
		base:         make([]int32, n),
		dbase:        make([]int32, n),
		levelQueue:   levelQueue,
		lcaTag1:      make([]int32, n),
		lcaTag2:      make([]int32, n),
		inTree:       make([]bool, n),
		hAdj:         make([][]gPair, n),
		mateH:        make([]int32, n),
		rep:          make([]int32, n),
		labelH:       make([]int8, n),
		parentHSrc:   make([]int32, n),
		parentHTgt:   make([]int32, n),
		bridgeHSrc:   make([]int32, n),
		bridgeHTgt:   make([]int32, n),
		dirH:         make([]int8, n),
		evenTimeH:    make([]int32, n),
		db2:          make([]int32, n),
	}
}

// --- union-find: base (forced-root, shrink target is always the LCA) ---

func (e *engine) findBase(v int32) int32 {
	for e.base[v] != v {
		e.base[v] = e.base[e.base[v]]
		v = e.base[v]
	}

	return v
}

func (e *engine) unionBase(a, b, root int32) {
	a = e.findBase(a)
	b = e.findBase(b)
	e.base[a] = root
	e.base[b] = root
}

// --- union-find: dbase (deferred, applied once per Δ-level) ---

func (e *engine) findDbase(v int32) int32 {
	for e.dbase[v] != v {
		e.dbase[v] = e.dbase[e.dbase[v]]
		v = e.dbase[v]
	}

	return v
}

func (e *engine) unionDbase(a, b int32) {
	a = e.findDbase(a)
	b = e.findDbase(b)
	if a != b {
		e.dbase[a] = b
	}
}

func (e *engine) makeRepDbase(v int32) {
	r := e.findDbase(v)
	if r != v {
		e.dbase[r] = v
		e.dbase[v] = v
	}
}

// --- union-find: db2 (phase-2 H-blossom collapse) ---

func (e *engine) findDb2(v int32) int32 {
	for e.db2[v] != v {
		e.db2[v] = e.db2[e.db2[v]]
		v = e.db2[v]
	}

	return v
}

func (e *engine) unionDb2(a, b int32) {
	a = e.findDb2(a)
	b = e.findDb2(b)
	if a != b {
		e.db2[a] = b
	}
}

func (e *engine) makeRepDb2(v int32) {
	r := e.findDb2(v)
	if r != v {
		e.db2[r] = v
		e.db2[v] = v
	}
}

// findLCA advances two tags alternately up from u and v along
// find_base(parent[mate[·]]) until one lands on the other's tag, or both
// hit a tree root first (NIL: the two live in different trees).
func (e *engine) findLCA(u, v int32) int32 {
	e.epoch++
	ep := e.epoch
	hx := e.findBase(u)
	hy := e.findBase(v)
	e.lcaTag1[hx] = ep
	e.lcaTag2[hy] = ep

	for {
		if e.lcaTag1[hy] == ep {
			return hy
		}
		if e.lcaTag2[hx] == ep {
			return hx
		}
		hxRoot := e.m.Mate(hx) == graph.NONE || e.parent[e.m.Mate(hx)] == graph.NONE
		hyRoot := e.m.Mate(hy) == graph.NONE || e.parent[e.m.Mate(hy)] == graph.NONE
		if hxRoot && hyRoot {
			return graph.NONE
		}
		if !hxRoot {
			hx = e.findBase(e.parent[e.m.Mate(hx)])
			e.lcaTag1[hx] = ep
		}
		if !hyRoot {
			hy = e.findBase(e.parent[e.m.Mate(hy)])
			e.lcaTag2[hy] = ep
		}
	}
}

type dunion struct{ a, b int32 }

// shrinkPath walks from x up to b (the LCA), unioning each crossed vertex's
// base into b immediately, deferring the matching dbase union via dunions,
// and pushing the newly-EVEN vertex's outgoing edges onto the next (or
// same) Δ-level.
func (e *engine) shrinkPath(b, x, y int32, dunions *[]dunion) {
	v := e.findBase(x)
	for v != b {
		e.unionBase(v, b, b)
		*dunions = append(*dunions, dunion{v, b})
		mv := e.m.Mate(v)
		e.unionBase(mv, b, b)
		*dunions = append(*dunions, dunion{mv, b})
		e.base[b] = b

		e.sourceBridge[mv] = x
		e.targetBridge[mv] = y

		d := int32(e.delta)
		for _, w := range e.g.Neighbors(mv) {
			if w == e.m.Mate(mv) {
				continue
			}
			bw := e.findBase(w)
			if e.label[bw] == odd {
				continue
			}
			if e.label[bw] == unlabeled {
				e.levelQueue[d+1] = append(e.levelQueue[d+1], hEdge{mv, w})
			} else if e.label[bw] == even {
				e.levelQueue[d] = append(e.levelQueue[d], hEdge{mv, w})
			}
		}

		v = e.findBase(e.parent[mv])
	}
	*dunions = append(*dunions, dunion{b, b})
}

// phase1 grows the Δ-leveled forest until a shortest augmenting path is
// known to exist (building H before returning true) or no further level
// produces work (false: matching is already maximum).
func (e *engine) phase1() bool {
	e.delta = 0
	e.treeNodes = e.treeNodes[:0]
	for i := range e.levelQueue {
		e.levelQueue[i] = e.levelQueue[i][:0]
	}

	var dunions []dunion
	for i := 0; i < e.n; i++ {
		e.base[i] = int32(i)
		e.dbase[i] = int32(i)
		e.label[i] = unlabeled
		e.parent[i] = graph.NONE
		e.sourceBridge[i] = graph.NONE
		e.targetBridge[i] = graph.NONE
		e.inTree[i] = false
	}

	for v := int32(0); int(v) < e.n; v++ {
		if e.m.Unmatched(v) {
			e.label[v] = even
			e.inTree[v] = true
			e.treeNodes = append(e.treeNodes, v)
			for _, u := range e.g.Neighbors(v) {
				if u == e.m.Mate(v) {
					continue
				}
				bu := e.findBase(u)
				if e.label[bu] == odd {
					continue
				}
				if e.label[bu] == unlabeled {
					e.levelQueue[1] = append(e.levelQueue[1], hEdge{v, u})
				} else if e.label[bu] == even {
					e.levelQueue[0] = append(e.levelQueue[0], hEdge{v, u})
				}
			}
		}
	}

	foundSAP := false

	for e.delta <= e.n {
		d := int32(e.delta)
		for len(e.levelQueue[d]) > 0 {
			last := len(e.levelQueue[d]) - 1
			edge := e.levelQueue[d][last]
			e.levelQueue[d] = e.levelQueue[d][:last]
			z, u := edge.u, edge.w

			bz, bu := e.findBase(z), e.findBase(u)
			if e.label[bz] != even {
				z, u = u, z
				bz, bu = bu, bz
			}
			if bz == bu || e.label[bz] != even {
				continue
			}
			if u == e.m.Mate(z) || e.label[bu] == odd {
				continue
			}

			switch e.label[bu] {
			case unlabeled:
				mv := e.m.Mate(u)
				if mv == graph.NONE {
					continue
				}
				e.parent[u] = z
				e.parent[mv] = u
				e.label[u] = odd
				e.label[mv] = even
				e.inTree[u] = true
				e.inTree[mv] = true
				e.treeNodes = append(e.treeNodes, u, mv)
				for _, w := range e.g.Neighbors(mv) {
					if w == e.m.Mate(mv) {
						continue
					}
					bw := e.findBase(w)
					if e.label[bw] == odd {
						continue
					}
					if e.label[bw] == unlabeled {
						e.levelQueue[d+1] = append(e.levelQueue[d+1], hEdge{mv, w})
					} else if e.label[bw] == even {
						e.levelQueue[d] = append(e.levelQueue[d], hEdge{mv, w})
					}
				}
			case even:
				lca := e.findLCA(z, u)
				if lca != graph.NONE {
					e.shrinkPath(lca, z, u, &dunions)
					e.shrinkPath(lca, u, z, &dunions)
				} else {
					foundSAP = true
				}
			}
		}

		if foundSAP {
			e.buildH()

			return true
		}

		for _, du := range dunions {
			if du.a == du.b {
				e.makeRepDbase(du.a)
			} else {
				e.unionDbase(du.a, du.b)
			}
		}
		dunions = dunions[:0]
		e.delta++
	}

	return false
}

// buildH computes mateH and the precomputed h_adj lists over the dbase
// components of this phase's tree nodes.
func (e *engine) buildH() {
	for _, u := range e.treeNodes {
		e.mateH[e.findDbase(u)] = graph.NONE
		e.hAdj[e.findDbase(u)] = e.hAdj[e.findDbase(u)][:0]
	}
	for _, u := range e.treeNodes {
		uh := e.findDbase(u)
		mv := e.m.Mate(u)
		if mv != graph.NONE && e.inTree[mv] {
			vh := e.findDbase(mv)
			if uh != vh {
				e.mateH[uh] = vh
				e.mateH[vh] = uh
			}
		}
	}
	for _, u := range e.treeNodes {
		uh := e.findDbase(u)
		for _, w := range e.g.Neighbors(u) {
			if !e.inTree[w] || e.m.Mate(u) == w {
				continue
			}
			wh := e.findDbase(w)
			if uh == wh {
				continue
			}
			e.hAdj[uh] = append(e.hAdj[uh], gPair{u, w})
		}
	}
}
