// Package mate is the shared, persistent matching state every engine reads
// and mutates between searches: mate[v] = w means (v, w) is a matched edge.
package mate

import (
	"sort"

	"github.com/katalvlaran/maxmatch/graph"
)

// Store holds a symmetric mate mapping over the dense vertex range [0, n).
// Store is the only state a matching engine carries across searches — every
// other piece of search scratch is per-search and reset between iterations.
type Store struct {
	mate []int32
}

// NewStore returns a Store with every vertex unmatched.
func NewStore(n int) *Store {
	m := make([]int32, n)
	for i := range m {
		m[i] = graph.NONE
	}

	return &Store{mate: m}
}

// Mate returns v's current partner, or graph.NONE if v is unmatched.
func (s *Store) Mate(v int32) int32 {
	return s.mate[v]
}

// Unmatched reports whether v currently has no partner.
func (s *Store) Unmatched(v int32) bool {
	return s.mate[v] == graph.NONE
}

// SetPair records (u, v) as a matched edge, symmetrically.
func (s *Store) SetPair(u, v int32) {
	s.mate[u] = v
	s.mate[v] = u
}

// Clear unmatches v, symmetrically clearing its former partner's slot too.
func (s *Store) Clear(v int32) {
	if w := s.mate[v]; w != graph.NONE {
		s.mate[w] = graph.NONE
	}
	s.mate[v] = graph.NONE
}

// Size returns the number of matched pairs.
func (s *Store) Size() int {
	count := 0
	for _, w := range s.mate {
		if w != graph.NONE {
			count++
		}
	}

	return count / 2
}

// Emit returns the current matching as a sorted list of (u, v) pairs with
// u < v, sorted lexicographically — the canonical output shape every engine
// and CLI front-end produces.
func (s *Store) Emit() [][2]int32 {
	pairs := make([][2]int32, 0, len(s.mate)/2)
	for v, w := range s.mate {
		if w != graph.NONE && int32(v) < w {
			pairs = append(pairs, [2]int32{int32(v), w})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})

	return pairs
}
