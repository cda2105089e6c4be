package dfs

import (
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// walker is the state shared by every traversal in this package.
type walker struct {
	graph *core.Graph
	em    *trace.Emitter
	color []int
	stack []int
	order []int
	pass  int
	comp  []int
}

func newWalker(g *core.Graph, rec trace.Recorder) *walker {
	return &walker{
		graph: g,
		em:    trace.NewEmitter(rec),
		color: make([]int, g.N()),
	}
}

// reset whitens every node for a new pass over g.
func (w *walker) reset(g *core.Graph, pass int) {
	w.graph = g
	w.pass = pass
	clear(w.color)
	w.stack = w.stack[:0]
}

func (w *walker) snapshot(current int, edge *core.Edge) Snapshot {
	return Snapshot{
		Pass:      w.pass,
		Color:     slices.Clone(w.color),
		Stack:     slices.Clone(w.stack),
		Current:   current,
		Edge:      edge,
		Order:     slices.Clone(w.order),
		Component: slices.Clone(w.comp),
	}
}

func (w *walker) enter(u int) {
	w.color[u] = Gray
	w.stack = append(w.stack, u)
}

func (w *walker) leave(u int) {
	w.color[u] = Black
	w.stack = w.stack[:len(w.stack)-1]
}
