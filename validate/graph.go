package validate

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// Edge is one user-entered connection.
type Edge struct {
	From   int   `validate:"min=0"`
	To     int   `validate:"min=0"`
	Weight int64 `validate:"min=0,max=1000000"`
}

// GraphParams describes an edited graph and the run's start node.
type GraphParams struct {
	Nodes    int    `validate:"min=2,max=10"`
	Directed bool
	Weighted bool
	Edges    []Edge `validate:"max=90,dive"`
	Source   int    `validate:"min=0"`
}

// Graph validates p and builds the core.Graph it describes.
//
// Beyond the tags:
//  1. Endpoints and Source lie in [0, Nodes).
//  2. No self-loops.
//  3. No duplicates: per ordered pair when directed, per unordered pair otherwise.
//  4. Weighted graphs need weights in [1, MaxWeight]; unweighted graphs need 0.
func Graph(p GraphParams) (*core.Graph, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	if p.Source >= p.Nodes {
		return nil, invalid("Source", "node %d out of range [0, %d)", p.Source, p.Nodes)
	}

	seen := make(map[[2]int]bool, len(p.Edges))
	for i, e := range p.Edges {
		field := fmt.Sprintf("Edges[%d]", i)
		switch {
		case e.From >= p.Nodes || e.To >= p.Nodes:
			return nil, invalid(field, "endpoint out of range [0, %d)", p.Nodes)
		case e.From == e.To:
			return nil, invalid(field, "self-loop on %d", e.From)
		case p.Weighted && e.Weight < 1:
			return nil, invalid(field, "weight must be positive")
		case !p.Weighted && e.Weight != 0:
			return nil, invalid(field, "weight on an unweighted graph")
		}
		key := [2]int{e.From, e.To}
		if !p.Directed && key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			return nil, invalid(field, "duplicate edge %d-%d", e.From, e.To)
		}
		seen[key] = true
	}

	var opts []core.GraphOption
	if p.Directed {
		opts = append(opts, core.WithDirected())
	}
	if p.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g, err := core.NewGraph(p.Nodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for _, e := range p.Edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return g, nil
}
