// Package gabowscaling implements Gabow's Δ-level scaling algorithm
// for maximum-cardinality matching in a general graph: alternating outer
// rounds of a Δ-leveled forest search (phase MIN, see phase1 in
// gabowscaling.go) that builds a contracted H-graph, and a blossom-aware
// search over H (phase MAX, see phase2.go) that finds and applies an
// augmenting path, unfolding H-vertices back to their G-side bridge
// chains recorded during contraction.
//
// Each outer round applies one augmenting path, so this engine runs in
// O(VE), the same bound as gabowsimple, its sibling without the Δ-level
// scaling or H-graph contraction, kept alongside it as the simpler
// reference.
package gabowscaling
