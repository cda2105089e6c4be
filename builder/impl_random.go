// SPDX-License-Identifier: MIT
//
// impl_random.go - RandomTree and RandomConnected constructors.
//
// Canonical model:
//   - RandomTree: node i (i ≥ 1) attaches to a uniform parent in [0, i).
//     The tree edges are parent -> i.
//   - RandomConnected(m): a RandomTree, then m-(n-1) extra edges drawn
//     without replacement from the absent pairs (shuffled in a stable
//     enumeration order).
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - RandomTree: n ≥ 1. RandomConnected: n-1 ≤ m ≤ max simple edges
//     (else ErrTooFewVertices / ErrTooManyEdges).
//
// Determinism: draws happen in a fixed order, so a fixed seed fixes the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

const (
	methodRandomTree      = "RandomTree"
	methodRandomConnected = "RandomConnected"
)

// RandomTree returns a Constructor that builds a uniform-attachment random tree.
func RandomTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.N() < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomTree, g.N(), ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}

		return randomTree(methodRandomTree, g, cfg)
	}
}

func randomTree(method string, g *core.Graph, cfg builderConfig) error {
	for i := 1; i < g.N(); i++ {
		if err := addEdge(method, g, cfg, cfg.rng.Intn(i), i); err != nil {
			return err
		}
	}

	return nil
}

// RandomConnected returns a Constructor that builds a connected simple graph
// with exactly m edges.
func RandomConnected(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.N()
		limit := n * (n - 1) / 2
		if g.Directed() {
			limit *= 2
		}
		switch {
		case n < 1:
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomConnected, n, ErrTooFewVertices)
		case m < n-1:
			return fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomConnected, m, n-1, ErrTooFewVertices)
		case m > limit:
			return fmt.Errorf("%s: m=%d > %d: %w", methodRandomConnected, m, limit, ErrTooManyEdges)
		case cfg.rng == nil:
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		if err := randomTree(methodRandomConnected, g, cfg); err != nil {
			return err
		}

		var free [][2]int
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) || g.HasEdge(i, j) {
					continue
				}
				free = append(free, [2]int{i, j})
			}
		}
		cfg.rng.Shuffle(len(free), func(a, b int) { free[a], free[b] = free[b], free[a] })
		for _, p := range free[:m-(n-1)] {
			if err := addEdge(methodRandomConnected, g, cfg, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
