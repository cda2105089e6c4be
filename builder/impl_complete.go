// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair i<j, i ascending then j.
//   - Directed: both i->j and j->i, in the same order.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.N()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(methodComplete, g, cfg, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
