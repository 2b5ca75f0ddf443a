// Package graphgen generates graph.Graph fixtures: fixed topologies
// (Cycle, Complete, CompleteBipartite, Petersen) and seeded random families
// (RandomSparse, RandomBipartite, RandomRegular).
//
// What
//
//   - Fixed constructors take no Option and always produce the same graph
//     for the same size arguments.
//   - Random constructors take an optional *rand.Rand (via WithRand or
//     WithSeed); called with p in {0, 1} and no RNG, they degrade to the
//     deterministic empty/complete graph instead of requiring a source.
//
// Why
//
//	Every matching engine needs graphs spanning a range of shapes — odd
//	cycles and the Petersen graph specifically exercise blossom
//	contraction, complete bipartite graphs exercise Hopcroft–Karp's level
//	structure, and seeded random families back the cross-engine
//	equivalence suite with reproducible large inputs.
//
// Determinism
//
//	Edge trials run in a fixed (i, j) order; a fixed seed reproduces a
//	fixed graph. RandomRegular's stub-matching retries are bounded and
//	also driven by the same RNG, so a fixed seed reproduces either a
//	fixed graph or a fixed ErrConstructFailed.
package graphgen
