// Package blossomsimple computes a maximum-cardinality matching in a general
// (not necessarily bipartite) graph via a single-tree alternating-tree BFS
// per root, contracting odd cycles ("blossoms") with a virtual union-find
// base array.
//
// What
//
//   - One alternating tree is grown per currently-unmatched root, in index
//     order; each success immediately augments the matching before the next
//     root starts.
//   - An edge between two outer vertices closes a blossom: the two
//     alternating paths up to their lowest common ancestor are contracted
//     into a single virtual vertex (their shared base), and any inner
//     vertex absorbed into it is promoted to outer and re-examined.
//
// Determinism
//
//	Roots are processed in ascending index order and every neighbor list is
//	pre-sorted, so the matching produced is reproducible.
//
// Complexity
//
//	O(V * E): up to V augmenting searches, each O(E) amortized including
//	blossom contraction.
package blossomsimple
