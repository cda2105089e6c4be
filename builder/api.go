// SPDX-License-Identifier: MIT
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go and return Constructor closures.
//   - Must* helpers panic on error and exist for fixtures only.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// Constructor adds a deterministic set of edges to g using the resolved
// builderConfig. Constructors validate early and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-node core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned at once.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u-v with the configured weight and tags core errors with
// the constructor name.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weight(g.Weighted())
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// MustPath returns an unweighted undirected path on n nodes.
func MustPath(n int) *core.Graph {
	return must(BuildGraph(n, nil, nil, Path()))
}

// MustComplete returns the undirected complete graph on n nodes. Weighted
// graphs draw weights uniformly from [1, 9] with a fixed seed.
func MustComplete(n int, weighted bool) *core.Graph {
	var gopts []core.GraphOption
	if weighted {
		gopts = append(gopts, core.WithWeighted())
	}

	return must(BuildGraph(n, gopts, []BuilderOption{WithSeed(1), WithWeightFn(UniformWeightFn(1, 9))}, Complete()))
}

// MustRandomTree returns an unweighted random tree on n nodes.
func MustRandomTree(n int, seed int64) *core.Graph {
	return must(BuildGraph(n, nil, []BuilderOption{WithSeed(seed)}, RandomTree()))
}

// MustRandomConnected returns a weighted, undirected, connected graph with n
// nodes and m edges. Weights are uniform in [1, 9].
func MustRandomConnected(n, m int, seed int64) *core.Graph {
	return must(BuildGraph(n,
		[]core.GraphOption{core.WithWeighted()},
		[]BuilderOption{WithSeed(seed), WithWeightFn(UniformWeightFn(1, 9))},
		RandomConnected(m)))
}

func must(g *core.Graph, err error) *core.Graph {
	if err != nil {
		panic(err)
	}

	return g
}
