// Package greedy provides fast, deterministic seeding of a mate.Store before
// an engine's augmenting-path search takes over.
//
// What
//
//   - FirstFit pairs each unmatched vertex, in ascending index order, with
//     its first unmatched neighbor.
//   - MinDegree orders vertices by ascending (degree, index) and pairs each
//     unmatched vertex with its smallest-degree unmatched neighbor (ties by
//     index).
//
// Why
//
//	Greedy seeding never reduces the size of the final maximum matching:
//	standard augmenting-path completion (the outer loop every engine runs)
//	preserves optimality regardless of the starting matching. It only
//	shrinks the number of augmentations an engine has to run, which matters
//	on large sparse graphs.
//
// Determinism
//
//	Both strategies iterate in a fixed order (ascending index, or ascending
//	(degree, index)), so repeated calls on the same graph.Graph produce the
//	same seed matching.
//
// Complexity
//
//   - FirstFit:  O(V + E) (each vertex's neighbor list scanned once).
//   - MinDegree: O(V log V + E) (one sort by degree, then one scan).
package greedy
