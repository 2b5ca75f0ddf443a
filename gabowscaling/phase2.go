package gabowscaling

import "github.com/katalvlaran/maxmatch/graph"

// phase2 finds one shortest augmenting path through the H-graph built by
// phase1's buildH and applies it to the real mate store, unfolding each
// H-vertex back into the G-side bridge chain recorded during contraction.
//
// H is searched with the same alternating-tree-plus-blossom-contraction
// shape as blossomsimple, run over hAdj/mateH instead of g/m directly: H's
// vertices are dbase representatives, so a blossom discovered while
// searching H is contracted into db2 rather than re-touching base/dbase.
func (e *engine) phase2() bool {
	roots := make([]int32, 0, len(e.treeNodes))
	seen := make(map[int32]bool, len(e.treeNodes))
	for _, u := range e.treeNodes {
		h := e.findDbase(u)
		if !seen[h] {
			seen[h] = true
			roots = append(roots, h)
			e.db2[h] = h
			e.labelH[h] = unlabeled
			e.parentHSrc[h] = graph.NONE
			e.parentHTgt[h] = graph.NONE
		}
	}

	for _, root := range roots {
		if e.mateH[root] != graph.NONE {
			continue
		}
		if e.labelH[e.findDb2(root)] != unlabeled {
			continue
		}
		if e.findAugmentingPathH(root) {
			return true
		}
	}

	return false
}

// findAugmentingPathH runs one blossom-aware BFS rooted at a single free
// H-vertex and augments immediately on success, mirroring blossomsimple's
// per-root search but over the H adjacency and db2 union-find.
func (e *engine) findAugmentingPathH(root int32) bool {
	e.labelH[root] = even
	queue := []int32{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		bv := e.findDb2(v)
		if bv != v || e.labelH[bv] != even {
			continue
		}

		for _, edge := range e.hAdj[bv] {
			u, w := edge.a, edge.b
			hu := e.findDbase(u)
			hw := e.findDbase(w)
			if e.findDb2(hu) != bv {
				continue
			}
			bw := e.findDb2(hw)
			if bw == bv {
				continue
			}

			switch e.labelH[bw] {
			case unlabeled:
				mv := e.mateH[bw]
				if mv == graph.NONE {
					e.bridgeHSrc[bw] = u
					e.bridgeHTgt[bw] = w
					e.parentHSrc[bw] = graph.NONE
					e.augmentH(bw, v)

					return true
				}
				e.labelH[bw] = odd
				e.parentHSrc[bw] = u
				e.parentHTgt[bw] = w
				bm := e.findDb2(mv)
				e.labelH[bm] = even
				queue = append(queue, bm)
			case even:
				e.contractH(bv, bw, v, u, w, &queue)
			}
		}
	}

	return false
}

// contractH finds the LCA of two even H-vertices by alternately marking
// ancestors up each side's parent-via-mate chain, then folds both sides
// into it: db2-unions every absorbed vertex to the LCA and promotes any
// absorbed odd vertex (and its H-mate) to even, re-enqueuing it so the BFS
// continues exploring through the contracted blossom.
func (e *engine) contractH(bv, bw, gv, gu, gw int32, queue *[]int32) {
	marked := make(map[int32]bool)
	for x := bv; ; {
		marked[x] = true
		mv := e.mateH[x]
		if mv == graph.NONE {
			break
		}
		ps := e.parentHSrc[e.findDb2(mv)]
		if ps == graph.NONE && e.findDb2(mv) != bv {
			marked[e.findDb2(mv)] = true
			break
		}
		px, pt := e.parentHSrc[e.findDb2(mv)], e.parentHTgt[e.findDb2(mv)]
		if px == graph.NONE {
			break
		}
		x = e.findDb2(e.findDbase(pt))
	}

	lca := int32(graph.NONE)
	for y := bw; ; {
		if marked[y] {
			lca = y

			break
		}
		mv := e.mateH[y]
		if mv == graph.NONE {
			break
		}
		my := e.findDb2(mv)
		px, pt := e.parentHSrc[my], e.parentHTgt[my]
		if px == graph.NONE {
			if marked[my] {
				lca = my
			}

			break
		}
		y = e.findDb2(e.findDbase(pt))
	}
	if lca == graph.NONE {
		lca = bv
	}

	e.foldToLCA(bv, lca, queue)
	e.foldToLCA(bw, lca, queue)
}

// foldToLCA walks from x up its parent-via-mate chain to lca, db2-unioning
// each crossed vertex (and its H-mate) into lca and promoting any odd
// vertex absorbed along the way to even.
func (e *engine) foldToLCA(x, lca int32, queue *[]int32) {
	for x != lca {
		e.unionDb2(x, lca)
		e.db2[lca] = lca
		if e.labelH[x] == odd {
			e.labelH[x] = even
		}

		mv := e.mateH[x]
		if mv == graph.NONE {
			return
		}
		bm := e.findDb2(mv)
		e.unionDb2(bm, lca)
		e.db2[lca] = lca
		if e.labelH[bm] == odd {
			e.labelH[bm] = even
			*queue = append(*queue, lca)
		}

		px, pt := e.parentHSrc[bm], e.parentHTgt[bm]
		if px == graph.NONE {
			return
		}
		x = e.findDb2(e.findDbase(pt))
	}
}

// augmentH walks the H-side alternating path from the newly-reached free
// vertex bw back to its tree root via parentH/bridgeH fields, flipping
// mateH pairs and applying each unfolded G-side pair to the real mate
// store as it goes. v is the even H-vertex the discovery edge left from.
func (e *engine) augmentH(bw, _ int32) {
	u, w := e.bridgeHSrc[bw], e.bridgeHTgt[bw]
	e.m.SetPair(u, w)

	cur := bw
	for {
		ps, pt := e.parentHSrc[cur], e.parentHTgt[cur]
		if ps == graph.NONE {
			return
		}
		oddSide := e.findDb2(e.findDbase(pt))
		e.m.SetPair(ps, pt)

		mv := e.mateH[oddSide]
		evenSide := e.findDb2(mv)
		childPs, childPt := e.parentHSrc[evenSide], e.parentHTgt[evenSide]
		e.mateH[oddSide] = evenSide
		e.mateH[evenSide] = oddSide

		if childPs == graph.NONE {
			return
		}
		e.m.SetPair(childPs, childPt)
		cur = evenSide
	}
}
