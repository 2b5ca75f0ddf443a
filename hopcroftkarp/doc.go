// Package hopcroftkarp computes a maximum-cardinality matching in a
// bipartite graph via Hopcroft–Karp: repeated phases of BFS distance
// layering followed by a DFS that augments a maximal set of vertex-disjoint
// shortest augmenting paths.
//
// What
//
//   - Match two-colors the input graph to recover the left/right
//     bipartition, then alternates bfs/dfs phases until no augmenting path
//     remains.
//   - Each phase's DFS only follows edges landing exactly one layer deeper
//     than the distance BFS assigned, which is what keeps the paths found
//     in one phase shortest and pairwise vertex-disjoint.
//
// Determinism
//
//	Both phases iterate vertices and neighbor lists in ascending index
//	order, so the matching produced is identical across runs on the same
//	graph.
//
// Complexity
//
//	O(E * sqrt(V)): at most O(sqrt(V)) phases, each O(E).
//
// Errors
//
//	ErrNotBipartite if the input graph fails two-coloring.
package hopcroftkarp
