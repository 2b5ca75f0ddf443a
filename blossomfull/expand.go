package blossomfull

import "github.com/katalvlaran/maxmatch/graph"

// expandBlossom recursively dissolves blossom b back into its leaf
// vertices: it clears blossomParent on every child, expands nested
// sub-blossoms in turn, and restores each leaf's inBlossom to identity.
//
// The source this is ported from also supports a mid-stage (non-endstage)
// expansion that relabels T-blossom children in place; this solver always
// calls expand after its search loop has already finished and augmented,
// never mid-search, so that branch is unreachable here and was not
// ported.
func (s *solver) expandBlossom(b int32) {
	bl := s.blos[b]
	for _, c := range bl.childs {
		s.blossomParent[c] = graph.NONE
		if s.isBlossom(c) {
			s.expandBlossom(c)
		} else {
			s.inBlossom[c] = c
		}
	}
	s.label[b] = unlabeled
	bl.childs = nil
	bl.edges = nil
}
