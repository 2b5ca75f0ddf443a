// Package graphgen builds fixture graph.Graph instances — fixed topologies
// and seeded random families — for tests, benchmarks, and the CLI front ends.
package graphgen

import "errors"

// ErrTooFewVertices indicates a size parameter fell below the constructor's
// minimum domain.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called with a nil
// *rand.Rand and no WithSeed/WithRand option resolved one.
var ErrNeedRandSource = errors.New("graphgen: rng is required")

// ErrConstructFailed indicates a bounded-retry constructor (RandomRegular)
// exhausted its attempts without producing a valid simple graph.
var ErrConstructFailed = errors.New("graphgen: construction failed")
