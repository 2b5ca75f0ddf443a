// Package gabowsimple computes a maximum-cardinality matching in a general
// graph via one multi-source forest search per outer iteration: every
// currently-free vertex roots its own alternating tree simultaneously, and
// the first augmenting path discovered — whether it ends at a free vertex
// or bridges two separate trees — is augmented before the forest is
// rebuilt from scratch.
//
// What
//
//   - Blossoms are contracted with a virtual union-find base array, found
//     via an interleaved LCA walk that advances two tags alternately up
//     each side's tree until they meet or both sides reach a root.
//   - Vertices absorbed into a blossom record a bridge (their position on
//     the discovery edge) so augmentation can later detour through the
//     blossom's structure instead of walking a stale parent chain.
//
// Determinism
//
//	Free roots seed the forest in ascending index order and every neighbor
//	list is pre-sorted; ties in the work queue resolve LIFO (pop from the
//	end), matching the same ordering used by this module's scaling engine.
//
// Complexity
//
//	O(V * E): up to V outer augmentations, each O(E) amortized across
//	blossom contraction and path tracing.
package gabowsimple
