package matchio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/maxmatch/graph"
)

// ReadMatrixMarket reads a SuiteSparse Matrix Market (.mtx) file:
// `%`-prefixed banner/comment lines are skipped, the first remaining
// line is "rows cols nnz", and every subsequent data line is "i j [val]"
// in 1-indexed coordinates. Self-loops (i==j) and duplicate edges are
// dropped; vertices are renumbered 0-indexed.
//
// Not built on participle: banner lines are an arbitrary-length run of
// '%'-prefixed text mixed with a 2-or-3-column numeric body, which isn't
// a fixed grammar shape participle's struct-tag declarations express
// without hand-writing a custom lexer state for the comment block —
// something bufio.Scanner's line-at-a-time model already does for free.
func ReadMatrixMarket(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var n int
	headerRead := false
	seen := make(map[[2]int32]bool)
	var edges [][2]int32

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)

		if !headerRead {
			rows, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
			}
			n = rows
			headerRead = true

			continue
		}

		if len(fields) < 2 {
			return nil, ErrMalformedLine
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		i--
		j--
		if i == j {
			continue
		}
		u, v := int32(i), int32(j)
		if u > v {
			u, v = v, u
		}
		key := [2]int32{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerRead {
		return nil, ErrMalformedHeader
	}

	return graph.New(n, edges)
}
