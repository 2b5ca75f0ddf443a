package greedy

import (
	"sort"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

// FirstFit pairs each unmatched vertex v (ascending index) with the first
// unmatched neighbor found in v's sorted neighbor list. Returns the number
// of pairs added.
//
// Complexity: O(V + E).
func FirstFit(g *graph.Graph, m *mate.Store) int {
	count := 0
	for v := int32(0); int(v) < g.N(); v++ {
		if !m.Unmatched(v) {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if m.Unmatched(w) {
				m.SetPair(v, w)
				count++
				break
			}
		}
	}

	return count
}

// MinDegree orders vertices by ascending (degree, index) and pairs each
// unmatched vertex, in that order, with its unmatched neighbor of smallest
// degree (ties broken by neighbor index). Returns the number of pairs added.
//
// Complexity: O(V log V + E).
func MinDegree(g *graph.Graph, m *mate.Store) int {
	n := g.N()
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := g.Degree(order[i]), g.Degree(order[j])
		if di != dj {
			return di < dj
		}

		return order[i] < order[j]
	})

	count := 0
	for _, v := range order {
		if !m.Unmatched(v) {
			continue
		}

		best := graph.NONE
		bestDeg := -1
		for _, w := range g.Neighbors(v) {
			if !m.Unmatched(w) {
				continue
			}
			d := g.Degree(w)
			if best == graph.NONE || d < bestDeg || (d == bestDeg && w < best) {
				best = w
				bestDeg = d
			}
		}
		if best != graph.NONE {
			m.SetPair(v, best)
			count++
		}
	}

	return count
}
