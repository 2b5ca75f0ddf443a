// Package graph is the read-only adjacency substrate every matching engine
// in this module is built on.
//
// What
//
//   - Vertices are the dense integer range [0, N).
//   - Edges are undirected and simple: no self-loops, no parallel edges.
//   - Adjacency is stored as a sorted, de-duplicated slice per vertex — a
//     CSR-like layout chosen for determinism, not for update performance.
//
// Why
//
//   - Every engine (hopcroftkarp, blossomsimple, gabowsimple, gabowscaling,
//     blossomfull, micalivazirani) iterates neighbor lists while growing an
//     alternating tree or forest; a stable iteration order is what makes
//     "same input ⇒ same output" possible across repeated runs.
//   - Keeping the substrate read-only after construction means every engine
//     can share one *Graph across repeated maximum_matching() calls (e.g. the
//     cross-engine equivalence tests) without synchronization.
//
// Determinism
//
//	New canonicalizes edges once: self-loops and out-of-range endpoints are
//	dropped, duplicate edges are coalesced, and each vertex's neighbor slice
//	is sorted ascending. Every engine's output is therefore reproducible for
//	a fixed edge list regardless of input edge order.
//
// Complexity (V = N, E = len(edges))
//
//   - New:       O(E log E) amortized (dedupe + sort per vertex).
//   - Neighbors: O(1) (returns the stored slice; callers must not mutate it).
//
// Usage
//
//	g, err := graph.New(5, [][2]int32{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}})
//	if err != nil { ... }
//	for _, w := range g.Neighbors(2) { ... }
package graph
