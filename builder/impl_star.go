// SPDX-License-Identifier: MIT
//
// impl_star.go - Star constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices), center in [0, n).
//   - Emits center -> leaf for every other node in increasing order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that joins center to every other node.
func Star(center int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.N()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if center < 0 || center >= n {
			return fmt.Errorf("%s: center %d with n=%d: %w", methodStar, center, n, core.ErrNodeOutOfRange)
		}
		for leaf := 0; leaf < n; leaf++ {
			if leaf == center {
				continue
			}
			if err := addEdge(methodStar, g, cfg, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
