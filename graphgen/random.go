package graphgen

import "github.com/katalvlaran/maxmatch/graph"

const (
	probMin = 0.0
	probMax = 1.0
)

// RandomSparse samples an Erdős–Rényi-style simple graph over n vertices:
// each unordered pair {i, j}, i < j, is an edge independently with
// probability p.
//
// Determinism: for a fixed seed, edges are trialed in a stable order (i asc,
// j asc), so the resulting graph is reproducible.
//
// Complexity: O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < minVertices {
		return nil, ErrTooFewVertices
	}
	if p < probMin || p > probMax {
		return nil, ErrInvalidProbability
	}
	cfg := resolve(opts)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, ErrNeedRandSource
	}

	edges := make([][2]int32, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == probMax
			if cfg.rng != nil {
				include = cfg.rng.Float64() < p
			}
			if include {
				edges = append(edges, [2]int32{int32(i), int32(j)})
			}
		}
	}

	return graph.New(n, edges)
}

// RandomBipartite samples a bipartite graph with left side [0, m), right
// side [m, m+n); each (i, j) crossing pair is an edge independently with
// probability p.
//
// Complexity: O(m*n) Bernoulli trials.
func RandomBipartite(m, n int, p float64, opts ...Option) (*graph.Graph, error) {
	if m < minVertices || n < minVertices {
		return nil, ErrTooFewVertices
	}
	if p < probMin || p > probMax {
		return nil, ErrInvalidProbability
	}
	cfg := resolve(opts)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, ErrNeedRandSource
	}

	edges := make([][2]int32, 0, m*n/2+1)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			include := p == probMax
			if cfg.rng != nil {
				include = cfg.rng.Float64() < p
			}
			if include {
				edges = append(edges, [2]int32{int32(i), int32(m + j)})
			}
		}
	}

	return graph.New(m+n, edges)
}

const maxStubMatchingAttempts = 8

// RandomRegular builds an undirected d-regular simple graph over n vertices
// via stub-matching: n*d stubs are shuffled and paired; a pairing with a
// self-loop or a repeated pair is rejected and the shuffle retried, up to a
// bounded number of attempts.
//
// Complexity: O(attempts * n * d) expected; attempts is small in practice
// for d << n.
func RandomRegular(n, d int, opts ...Option) (*graph.Graph, error) {
	if n < minVertices {
		return nil, ErrTooFewVertices
	}
	if d < 0 || d >= n {
		return nil, ErrTooFewVertices
	}
	if (n*d)%2 != 0 {
		return nil, ErrTooFewVertices
	}
	cfg := resolve(opts)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	if d == 0 {
		return graph.New(n, nil)
	}

	stubCount := n * d
	stubs := make([]int32, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = int32(i)
			pos++
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int32]struct{}, stubCount/2)
		valid := true
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int32{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		edges := make([][2]int32, 0, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			edges = append(edges, [2]int32{stubs[i], stubs[i+1]})
		}

		return graph.New(n, edges)
	}

	return nil, ErrConstructFailed
}
