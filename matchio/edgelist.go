package matchio

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/maxmatch/graph"
)

// numberStream is the whole edge-list grammar: a bare sequence of
// integers. The header (2 or 3 tokens) and the u,v data lines are all
// just integers, and which of the two header shapes applies can only be
// told apart by counting — N M implies 2*M more integers follow; L R M
// implies 2*M more integers follow a 3-token header. That count check
// belongs to ordinary Go, not the grammar, so participle's only job here
// is tokenizing and capturing every integer in file order.
type numberStream struct {
	Numbers []int64 `(@Int)*`
}

var edgeListParser = participle.MustBuild[numberStream]()

// ReadEdgeList reads the edge-list format described in this module's
// external-interfaces documentation: a header line of either "N M"
// (general) or "L R M" (bipartite, L+R=N), followed by M "u v" lines,
// 0-indexed. Trailing whitespace is tolerated (participle's default
// lexer skips it); endpoints outside [0,N) or u==v are silently dropped
// by graph.New.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	stream, err := edgeListParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	nums := stream.Numbers
	if len(nums) < 2 {
		return nil, ErrMalformedHeader
	}

	n, m, rest := headerShape(nums)
	if rest == nil {
		return nil, ErrEdgeCountMismatch
	}

	edges := make([][2]int32, 0, m)
	for i := 0; i < len(rest); i += 2 {
		edges = append(edges, [2]int32{int32(rest[i]), int32(rest[i+1])})
	}

	return graph.New(n, edges)
}

// headerShape decides between the "N M" and "L R M" header forms by
// checking which leaves exactly 2*M integers remaining, trying the
// 2-token form first (it's the only form matchio's general substrate
// actually distinguishes vertices by).
func headerShape(nums []int64) (n int, m int64, rest []int64) {
	if len(nums) >= 2 {
		candidateM := nums[1]
		remaining := nums[2:]
		if int64(len(remaining)) == 2*candidateM {
			return int(nums[0]), candidateM, remaining
		}
	}
	if len(nums) >= 3 {
		l, r, candidateM := nums[0], nums[1], nums[2]
		remaining := nums[3:]
		if int64(len(remaining)) == 2*candidateM {
			return int(l + r), candidateM, remaining
		}
	}

	return 0, 0, nil
}
