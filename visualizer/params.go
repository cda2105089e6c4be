package visualizer

import (
	"slices"

	"github.com/katalvlaran/stepviz/backtrack"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/mo"
	"github.com/katalvlaran/stepviz/validate"
)

// Params is the input of every visualizer. Each one reads only its own
// section; the rest is ignored.
type Params struct {
	Graph  validate.GraphParams `toml:"graph"`
	Target *int                 `toml:"target"` // dijkstra; nil settles every node

	Text    string `toml:"text"`
	Pattern string `toml:"pattern"`

	N            int            `toml:"n"`
	Grid         backtrack.Grid `toml:"grid"`
	MaxSolutions int            `toml:"max_solutions"` // n-queens, sudoku, palindrome-partition; 0 means all

	Values  []int      `toml:"values"`
	Queries []mo.Query `toml:"queries"`

	Tree validate.TreeParams `toml:"tree"`

	Nodes int      `toml:"nodes"`
	Ops   []dsu.Op `toml:"ops"`

	Words []string `toml:"words"`
}

// Target returns a pointer to node for Params.Target.
func Target(node int) *int { return &node }

// Clone returns a deep copy, so decoding into it never writes through to
// the catalog defaults.
func (p Params) Clone() Params {
	c := p
	if p.Target != nil {
		c.Target = Target(*p.Target)
	}
	c.Graph.Edges = slices.Clone(p.Graph.Edges)
	c.Values = slices.Clone(p.Values)
	c.Queries = slices.Clone(p.Queries)
	c.Tree.Edges = slices.Clone(p.Tree.Edges)
	c.Ops = slices.Clone(p.Ops)
	c.Words = slices.Clone(p.Words)

	return c
}

// graphParams converts a built graph into editable GraphParams.
func graphParams(g *core.Graph, source int) validate.GraphParams {
	p := validate.GraphParams{
		Nodes:    g.N(),
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Source:   source,
	}
	for _, e := range g.Edges() {
		p.Edges = append(p.Edges, validate.Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return p
}

// directed lists unweighted directed edges.
func directed(n int, edges ...[2]int) validate.GraphParams {
	p := validate.GraphParams{Nodes: n, Directed: true}
	for _, e := range edges {
		p.Edges = append(p.Edges, validate.Edge{From: e[0], To: e[1]})
	}

	return p
}

var demoSudoku = backtrack.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}
