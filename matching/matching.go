// Package matching defines the shared Engine interface every
// maximum-cardinality matching algorithm in this module implements, plus
// the registry used by the CLI front-ends and the cross-engine
// equivalence tests to look an engine up by name.
//
// Structurally grounded on the flow package's Dinic, EdmondsKarp, and
// FordFulkerson, which all implement one shared options/result shape so
// callers can swap algorithms without touching call sites.
package matching

import (
	"fmt"

	"github.com/katalvlaran/maxmatch/blossomfull"
	"github.com/katalvlaran/maxmatch/blossomsimple"
	"github.com/katalvlaran/maxmatch/gabowscaling"
	"github.com/katalvlaran/maxmatch/gabowsimple"
	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/hopcroftkarp"
	"github.com/katalvlaran/maxmatch/mate"
	"github.com/katalvlaran/maxmatch/micalivazirani"
)

// Result is the canonical output shape every engine returns: a sorted
// list of (u, v) pairs with u < v.
type Result struct {
	Pairs [][2]int32
}

// Engine computes a maximum-cardinality matching of g.
type Engine interface {
	MaximumMatching(g *graph.Graph) (Result, error)
}

func fromStore(m *mate.Store, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}

	return Result{Pairs: m.Emit()}, nil
}

type hopcroftKarpEngine struct{}

func (hopcroftKarpEngine) MaximumMatching(g *graph.Graph) (Result, error) {
	return fromStore(hopcroftkarp.Match(g))
}

type blossomSimpleEngine struct{}

func (blossomSimpleEngine) MaximumMatching(g *graph.Graph) (Result, error) {
	return fromStore(blossomsimple.Match(g))
}

type gabowSimpleEngine struct{}

func (gabowSimpleEngine) MaximumMatching(g *graph.Graph) (Result, error) {
	return fromStore(gabowsimple.Match(g))
}

type gabowScalingEngine struct{}

func (gabowScalingEngine) MaximumMatching(g *graph.Graph) (Result, error) {
	return fromStore(gabowscaling.Match(g))
}

type blossomFullEngine struct{}

func (blossomFullEngine) MaximumMatching(g *graph.Graph) (Result, error) {
	return fromStore(blossomfull.Match(g))
}

type micaliVaziraniEngine struct{}

func (micaliVaziraniEngine) MaximumMatching(g *graph.Graph) (Result, error) {
	return fromStore(micalivazirani.Match(g))
}

// registry maps each engine's CLI/lookup name to its Engine adapter. Order
// here also fixes the iteration order All() returns, so the equivalence
// test suite's failure messages name engines in a stable order.
var registry = []struct {
	name   string
	engine Engine
}{
	{"hopcroftkarp", hopcroftKarpEngine{}},
	{"blossomsimple", blossomSimpleEngine{}},
	{"gabowsimple", gabowSimpleEngine{}},
	{"gabowscaling", gabowScalingEngine{}},
	{"blossomfull", blossomFullEngine{}},
	{"micalivazirani", micaliVaziraniEngine{}},
}

// All returns every registered engine's name paired with its Engine
// adapter, in a fixed, stable order.
func All() []struct {
	Name   string
	Engine Engine
} {
	out := make([]struct {
		Name   string
		Engine Engine
	}, len(registry))
	for i, r := range registry {
		out[i] = struct {
			Name   string
			Engine Engine
		}{r.name, r.engine}
	}

	return out
}

// ErrUnknownEngine is returned by Lookup when name matches no registered
// engine.
var ErrUnknownEngine = fmt.Errorf("matching: unknown engine")

// Lookup resolves name (e.g. "gabowsimple") to its Engine adapter.
func Lookup(name string) (Engine, error) {
	for _, r := range registry {
		if r.name == name {
			return r.engine, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}
