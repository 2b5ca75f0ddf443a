package hopcroftkarp

import "github.com/katalvlaran/maxmatch/graph"

const (
	colorUnset = 0
	colorLeft  = 1
	colorRight = 2
)

// twoColor assigns each vertex to the left or right side via BFS, one
// component at a time. It returns ErrNotBipartite the first time an edge
// joins two same-colored vertices.
//
// Complexity: O(V + E).
func twoColor(g *graph.Graph) ([]bool, error) {
	n := g.N()
	color := make([]int, n)
	left := make([]bool, n)

	queue := make([]int32, 0, n)
	for s := int32(0); int(s) < n; s++ {
		if color[s] != colorUnset {
			continue
		}
		color[s] = colorLeft
		left[s] = true
		queue = append(queue[:0], s)

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			wantColor := colorRight
			if color[v] == colorRight {
				wantColor = colorLeft
			}
			for _, w := range g.Neighbors(v) {
				if color[w] == colorUnset {
					color[w] = wantColor
					left[w] = wantColor == colorLeft
					queue = append(queue, w)
				} else if color[w] != wantColor {
					return nil, ErrNotBipartite
				}
			}
		}
	}

	return left, nil
}
