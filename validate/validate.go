// Package validate checks a claimed matching against its graph: every
// pair must be a real edge, and no vertex may appear in more than one
// pair. It is a post-hoc verifier, not part of any engine's search —
// engines never consult it, and a failed report does not panic or abort
// the CLI, matching the research-tool error-handling policy the rest of
// this module follows.
package validate

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/maxmatch/graph"
)

// Report is the result of validating one claimed matching.
type Report struct {
	MatchingSize    int
	MatchedVertices int
	BadEdges        [][2]int32 // pairs claimed but not present in g
	OverMatched     []int32    // vertices appearing in >1 pair
}

// Passed reports whether the matching is structurally valid: every pair
// is a real edge and no vertex is over-matched.
func (r Report) Passed() bool {
	return len(r.BadEdges) == 0 && len(r.OverMatched) == 0
}

// String formats the banner/pass-fail block the CLI front-ends print.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "=== Validation Report ===")
	fmt.Fprintf(&b, "Matching size: %d\n", r.MatchingSize)
	fmt.Fprintf(&b, "Matched vertices: %d\n", r.MatchedVertices)
	for _, e := range r.BadEdges {
		fmt.Fprintf(&b, "ERROR: Edge (%d, %d) not in graph!\n", e[0], e[1])
	}
	for _, v := range r.OverMatched {
		fmt.Fprintf(&b, "ERROR: Vertex %d in more than one matching edge!\n", v)
	}
	if r.Passed() {
		fmt.Fprintln(&b, "VALIDATION PASSED")
	} else {
		fmt.Fprintln(&b, "VALIDATION FAILED")
	}
	fmt.Fprintln(&b, "=========================")

	return b.String()
}

// hasEdge reports whether w appears in g's sorted neighbor list for v,
// via binary search.
func hasEdge(g *graph.Graph, v, w int32) bool {
	neighbors := g.Neighbors(v)
	i := sort.Search(len(neighbors), func(i int) bool { return neighbors[i] >= w })

	return i < len(neighbors) && neighbors[i] == w
}

// Check validates pairs against g: every edge must lie in g's adjacency
// (binary search on the sorted neighbor list) and every vertex must
// appear in at most one pair (tracked with a mapset.Set so a vertex
// appearing in its second pair is reported exactly once, not once per
// extra occurrence).
func Check(g *graph.Graph, pairs [][2]int32) Report {
	var report Report
	report.MatchingSize = len(pairs)

	seen := mapset.NewThreadUnsafeSet[int32]()
	overMatched := mapset.NewThreadUnsafeSet[int32]()

	for _, pair := range pairs {
		u, v := pair[0], pair[1]
		if !hasEdge(g, u, v) {
			report.BadEdges = append(report.BadEdges, pair)
		}
		for _, x := range [2]int32{u, v} {
			if seen.Contains(x) {
				overMatched.Add(x)
			}
			seen.Add(x)
		}
	}

	report.MatchedVertices = seen.Cardinality()
	report.OverMatched = overMatched.ToSlice()
	sort.Slice(report.OverMatched, func(i, j int) bool { return report.OverMatched[i] < report.OverMatched[j] })

	return report
}
