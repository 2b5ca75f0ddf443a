package micalivazirani

import "github.com/katalvlaran/maxmatch/graph"

// findBlossomBase mirrors blossomsimple's ancestor-marking LCA: for every
// non-root even vertex y built by phase1, parent[y] equals mate[y] by
// construction (the only way a non-root even vertex enters the forest is
// via its own matching edge from its tree parent), so walking
// parent[mate[base(x)]] climbs exactly one tree-level at a time, same as
// blossomsimple's walk over a freshly-built alternating tree.
func (e *engine) findBlossomBase(v, w int32) int32 {
	marked := make(map[int32]bool)
	u := v
	for {
		b := e.findBase(u)
		marked[b] = true
		mb := e.m.Mate(b)
		if mb == graph.NONE {
			break
		}
		pm := e.parent[mb]
		if pm == graph.NONE {
			break
		}
		u = pm
	}

	u = w
	for {
		b := e.findBase(u)
		if marked[b] {
			return b
		}
		mb := e.m.Mate(b)
		if mb == graph.NONE {
			break
		}
		pm := e.parent[mb]
		if pm == graph.NONE {
			break
		}
		u = pm
	}

	return graph.NONE
}

// foldToLCA walks from v up toward lca, unioning every vertex it crosses
// into lca's base and promoting any absorbed odd vertex to even.
func (e *engine) foldToLCA(v, lca int32) {
	for e.findBase(v) != lca {
		bv := e.findBase(v)
		mv := e.m.Mate(v)
		if mv == graph.NONE {
			return
		}
		bw := e.findBase(mv)

		e.base[bv] = lca
		e.base[bw] = lca

		if e.label[bw] == odd {
			e.label[bw] = even
		}

		pm := e.parent[mv]
		if pm == graph.NONE {
			return
		}
		v = pm
	}
}

// climbToRoot flips the alternating path from even vertex v up to its
// tree's free root, pairing each odd vertex with its own parent instead
// of its old (pre-flip) mate. v itself is left untouched: v is either
// the bridge endpoint the caller is about to pair directly, or already a
// free root with nothing above it to flip.
//
// This starts one tree-level higher than blossomsimple's augmentPath: v
// here is already an even, already-matched interior vertex (mate[v] ==
// parent[v] when v is a non-root), not a newly discovered free vertex,
// so the first pair flipped is (parent[v], parent[parent[v]]), not
// (v, parent[v]).
func (e *engine) climbToRoot(v int32) {
	cur := e.parent[v]
	for cur != graph.NONE {
		pc := e.parent[cur]
		ppc := e.m.Mate(pc)
		e.m.SetPair(cur, pc)
		if ppc == graph.NONE {
			break
		}
		cur = ppc
	}
}

// phase2 drains the tenacity buckets built by phase1 in increasing
// order, popping each bucket LIFO. A bridge between two bases already
// joined is stale (already shrunk or already on a finished tree) and is
// skipped; a common ancestor means an odd cycle, folded in place; the
// first bridge with no common ancestor is a genuine augmenting path,
// applied by flipping both sides up to their free roots and pairing the
// bridge itself.
//
// Only one augmentation is ever applied per call: every other bucket
// entry was bucketed against the label/parent/base state phase1 froze,
// which an augmentation invalidates (a vertex it matches may be the
// endpoint of another still-queued bridge). Stopping immediately and
// letting Match's loop call phase1 again, the same one-path-per-call
// rebuild-and-restart structure gabowscaling's phase2 uses, keeps every
// bridge resolved against state that is still accurate. Folds before the
// first augmentation are safe to keep draining: they only merge bases
// and relabel, never touch mate.
func (e *engine) phase2() bool {
	for idx := 0; idx < len(e.buckets); idx++ {
		for len(e.buckets[idx]) > 0 {
			last := len(e.buckets[idx]) - 1
			br := e.buckets[idx][last]
			e.buckets[idx] = e.buckets[idx][:last]

			u, v := br.u, br.v
			bu, bv := e.findBase(u), e.findBase(v)
			if bu == bv {
				continue
			}
			if e.label[bu] != even || e.label[bv] != even {
				continue
			}

			if lca := e.findBlossomBase(u, v); lca != graph.NONE {
				e.foldToLCA(u, lca)
				e.foldToLCA(v, lca)

				continue
			}

			e.climbToRoot(u)
			e.climbToRoot(v)
			e.m.SetPair(u, v)

			return true
		}
	}

	return false
}
