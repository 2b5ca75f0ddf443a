// Match computes a maximum-cardinality matching of g by repeatedly
// growing one alternating-tree BFS from each currently-free vertex until
// no root produces an augmenting path, following Edmonds' original
// blossom-contraction algorithm with nested blossom records.
package blossomfull

import (
	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/mate"
)

func Match(g *graph.Graph) (*mate.Store, error) {
	s := newSolver(g)
	s.m = mate.NewStore(s.n)
	s.solve()

	return s.m, nil
}

// solve runs the outer improve-until-stable loop: each pass scans every
// root in index order, grows a fresh BFS from each still-free one, and
// restarts the pass immediately after any augmentation (matching the
// source's "break on augmented, improved=True" control flow) so a newly
// matched vertex never causes a stale root index to be reused.
func (s *solver) solve() {
	improved := true
	for improved {
		improved = false
		for root := 0; root < s.n; root++ {
			if !s.m.Unmatched(int32(root)) {
				continue
			}

			s.resetBlossoms()
			s.assignLabel(int32(root), sLabel, graph.NONE)

			augmented := false
			for len(s.queue) > 0 && !augmented {
				v := s.queue[len(s.queue)-1]
				s.queue = s.queue[:len(s.queue)-1]
				if s.label[s.inBlossom[v]] != sLabel {
					continue
				}

				for _, w := range s.adj[v] {
					bv := s.inBlossom[v]
					bw := s.inBlossom[w]
					if bv == bw {
						continue
					}
					s.ensure(bw)

					switch s.label[bw] {
					case unlabeled:
						if s.m.Unmatched(w) {
							s.augmentPath(v, w)
							augmented = true
						} else {
							s.assignLabel(w, tLabel, v)
						}
					case sLabel:
						base := s.scanBlossom(v, w)
						if base >= 0 {
							s.addBlossom(base, v, w)
						}
					}

					if augmented {
						break
					}
				}
			}

			for b := int32(s.n); b < s.nblos; b++ {
				if int(b) < len(s.blos) && s.blos[b] != nil && len(s.blos[b].childs) > 0 && s.blossomParent[b] == graph.NONE {
					s.expandBlossom(b)
				}
			}

			if augmented {
				improved = true

				break
			}
		}
	}
}
