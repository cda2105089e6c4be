package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []int
	em    *trace.Emitter
	res   BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation for
// invalid input. A stopped recorder yields a partial result with OutcomeCancelled.
func BFS(g *core.Graph, start int, opts ...Option) (BFSResult, error) {
	if g == nil {
		return BFSResult{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return BFSResult{}, o.err
	}
	if start < 0 || start >= g.N() {
		return BFSResult{}, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.N()
	w := &walker{
		graph: g,
		opts:  o,
		em:    trace.NewEmitter(o.Recorder),
		res: BFSResult{
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	return w.run(start), nil
}

func (w *walker) run(start int) BFSResult {
	w.discover(start, 0, -1)
	if !w.em.Emitf(trace.EventInit, trace.DelayVisit, w.snapshot(-1, nil), []int{start}, "enqueue %d", start) {
		return w.result(trace.OutcomeCancelled)
	}

	for len(w.queue) > 0 {
		// 1. Dequeue
		u := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, u)
		d := w.res.Depth[u]
		if !w.em.Emitf(trace.EventVisit, trace.DelayVisit, w.snapshot(u, nil), []int{u},
			"visit %d at depth %d", u, d) {
			return w.result(trace.OutcomeCancelled)
		}

		// 2. Depth limit
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}

		// 3. Enqueue undiscovered neighbors
		for _, e := range w.graph.Neighbors(u) {
			edge := e
			v := e.To
			if w.res.Depth[v] >= 0 {
				if !w.em.Emitf(trace.EventCompare, trace.DelayCompare, w.snapshot(u, &edge), []int{u, v},
					"%d already seen at depth %d", v, w.res.Depth[v]) {
					return w.result(trace.OutcomeCancelled)
				}
				continue
			}
			w.discover(v, d+1, u)
			if !w.em.Emitf(trace.EventUpdate, trace.DelayUpdate, w.snapshot(u, &edge), []int{u, v},
				"discover %d at depth %d", v, d+1) {
				return w.result(trace.OutcomeCancelled)
			}
		}
	}

	res := w.result(trace.OutcomeSuccess)
	w.em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "%d nodes in %d layers", len(res.Order), len(res.Layers))

	return res
}

func (w *walker) discover(v, depth, parent int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	if depth == len(w.res.Layers) {
		w.res.Layers = append(w.res.Layers, nil)
	}
	w.res.Layers[depth] = append(w.res.Layers[depth], v)
	w.queue = append(w.queue, v)
}

func (w *walker) snapshot(current int, edge *core.Edge) Snapshot {
	return Snapshot{
		Queue:   slices.Clone(w.queue),
		Depth:   slices.Clone(w.res.Depth),
		Current: current,
		Edge:    edge,
		Layers:  cloneLayers(w.res.Layers),
	}
}

func (w *walker) result(outcome trace.Outcome) BFSResult {
	return BFSResult{
		Order:   slices.Clone(w.res.Order),
		Depth:   slices.Clone(w.res.Depth),
		Parent:  slices.Clone(w.res.Parent),
		Layers:  cloneLayers(w.res.Layers),
		Outcome: outcome,
	}
}

func cloneLayers(layers [][]int) [][]int {
	out := make([][]int, len(layers))
	for i, l := range layers {
		out[i] = slices.Clone(l)
	}

	return out
}
