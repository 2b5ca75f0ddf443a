package graphgen

import "math/rand"

// config holds the resolved state for the stochastic constructors
// (RandomSparse, RandomBipartite, RandomRegular). Fixed-topology
// constructors (Cycle, Complete, Petersen, ...) take no options.
type config struct {
	rng *rand.Rand
}

// Option customizes a stochastic constructor's RNG.
type Option func(*config)

// WithRand supplies an explicit RNG. Panics on nil: option constructors
// validate eagerly so a programmer error surfaces at call site, not deep
// inside a Bernoulli-trial loop.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand, for reproducible fixtures in
// tests and benchmarks.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func resolve(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
