package graphgen

import "github.com/katalvlaran/maxmatch/graph"

const minVertices = 1

// Cycle returns the n-vertex cycle C_n: edges (i, i+1 mod n).
//
// Complexity: O(n).
func Cycle(n int) (*graph.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	edges := make([][2]int32, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int32{int32(i), int32((i + 1) % n)})
	}

	return graph.New(n, edges)
}

// Complete returns K_n: every distinct pair of vertices joined.
//
// Complexity: O(n^2).
func Complete(n int) (*graph.Graph, error) {
	if n < minVertices {
		return nil, ErrTooFewVertices
	}
	edges := make([][2]int32, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int32{int32(i), int32(j)})
		}
	}

	return graph.New(n, edges)
}

// CompleteBipartite returns K_{m,n}: left side vertices [0, m), right side
// vertices [m, m+n), every left vertex joined to every right vertex.
//
// Complexity: O(m*n).
func CompleteBipartite(m, n int) (*graph.Graph, error) {
	if m < minVertices || n < minVertices {
		return nil, ErrTooFewVertices
	}
	edges := make([][2]int32, 0, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			edges = append(edges, [2]int32{int32(i), int32(m + j)})
		}
	}

	return graph.New(m+n, edges)
}

// petersenEdges is the fixed edge list of the Petersen graph: an outer
// 5-cycle (0..4), an inner 5-cycle connected as a pentagram (5..9), and
// five spokes joining corresponding outer/inner vertices.
var petersenEdges = [][2]int32{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer cycle
	{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner pentagram
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
}

// Petersen returns the Petersen graph: 10 vertices, 15 edges, 3-regular.
// A standard stress fixture for blossom-contraction engines since its
// maximum matching (size 5) requires traversing odd cycles.
func Petersen() (*graph.Graph, error) {
	return graph.New(10, petersenEdges)
}
