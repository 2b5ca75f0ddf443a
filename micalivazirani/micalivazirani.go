package micalivazirani

import (
	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

const (
	unlabeled int8 = 0
	even      int8 = 1
	odd       int8 = 2
)

type bridge struct{ u, v int32 }

type engine struct {
	g *graph.Graph
	m *mate.Store
	n int

	label    []int8
	parent   []int32
	minLevel []int32
	base     []int32

	levels  [][]int32
	buckets [][]bridge
}

const unset = int32(1 << 30)

func newEngine(g *graph.Graph, m *mate.Store) *engine {
	n := g.N()

	return &engine{
		g: g, m: m, n: n,
		label:    make([]int8, n),
		parent:   make([]int32, n),
		minLevel: make([]int32, n),
		base:     make([]int32, n),
	}
}

// Match computes a maximum-cardinality matching of g.
func Match(g *graph.Graph) (*mate.Store, error) {
	m := mate.NewStore(g.N())
	e := newEngine(g, m)

	for {
		e.phase1()
		if !e.phase2() {
			return m, nil
		}
	}
}

func (e *engine) findBase(v int32) int32 {
	for e.base[v] != v {
		e.base[v] = e.base[e.base[v]]
		v = e.base[v]
	}

	return v
}

// addToLevel records v at level lvl, growing e.levels as needed.
func (e *engine) addToLevel(lvl int, v int32) {
	for len(e.levels) <= lvl {
		e.levels = append(e.levels, nil)
	}
	e.levels[lvl] = append(e.levels[lvl], v)
}

// bridgeBucket returns the bucket index for tenacity t = lu+lv+1,
// growing e.buckets as needed. Tenacity is always odd for a genuine
// bridge, so (t-1)/2 indexes a dense 0..n bucket range.
func (e *engine) bridgeBucket(t int32) int {
	idx := int((t - 1) / 2)
	for len(e.buckets) <= idx {
		e.buckets = append(e.buckets, nil)
	}

	return idx
}

// stepTo mirrors the reference step_to: if to's min_level is unset or
// strictly greater than the next level, to joins that level with from as
// its tree parent; if to already sits on the next level the edge is
// ignored; otherwise the edge reaches a lower-leveled vertex and, when both
// endpoints sit on even levels, is bucketed at once as a bridge by
// tenacity.
func (e *engine) stepTo(to, from int32, level int) {
	next := int32(level + 1)
	if e.minLevel[to] >= next {
		if e.minLevel[to] != next {
			e.addToLevel(int(next), to)
			e.minLevel[to] = next
			e.parent[to] = from
			e.label[to] = labelForLevel(next)
		}

		return
	}

	// Bridge: both endpoints already leveled. Tenacity is the sum of
	// their levels plus one (both sides must be even-level tree nodes
	// for a genuine augmenting bridge; odd-odd or mixed bridges cannot
	// extend an alternating path and are skipped).
	lFrom, lTo := int32(level), e.minLevel[to]
	if lFrom%2 != 0 || lTo%2 != 0 {
		return
	}
	t := lFrom + lTo + 1
	idx := e.bridgeBucket(t)
	e.buckets[idx] = append(e.buckets[idx], bridge{from, to})
}

func labelForLevel(lvl int32) int8 {
	if lvl%2 == 0 {
		return even
	}

	return odd
}

// phase1 resets all per-iteration state and grows the Δ-leveled forest
// from every currently-free vertex until no further level produces work.
func (e *engine) phase1() {
	e.levels = e.levels[:0]
	e.buckets = e.buckets[:0]
	for i := 0; i < e.n; i++ {
		e.base[i] = int32(i)
		e.label[i] = unlabeled
		e.parent[i] = graph.NONE
		e.minLevel[i] = unset
	}

	for v := 0; v < e.n; v++ {
		if e.m.Unmatched(int32(v)) {
			e.addToLevel(0, int32(v))
			e.minLevel[v] = 0
			e.label[v] = even
		}
	}

	for i := 0; i < len(e.levels); i++ {
		for _, cur := range e.levels[i] {
			if i%2 == 0 {
				for _, w := range e.g.Neighbors(cur) {
					if w != e.m.Mate(cur) {
						e.stepTo(w, cur, i)
					}
				}
			} else {
				mv := e.m.Mate(cur)
				if mv != graph.NONE {
					e.stepTo(mv, cur, i)
				}
			}
		}
	}
}
