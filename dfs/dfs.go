package dfs

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// dfsWalker adds the bookkeeping of a plain traversal.
type dfsWalker struct {
	*walker
	opts DFSOptions
	res  DFSResult
}

// DFS performs depth-first search on graph g from start. With
// WithFullTraversal it continues from every unvisited node in index order and
// start only selects the first root.
//
// Steps: visit (discover), compare (edge examined), backtrack (finish), done.
func DFS(g *core.Graph, start int, opts ...Option) (DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return DFSResult{}, ErrGraphNil
	}
	if start < 0 || start >= g.N() {
		return DFSResult{}, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	n := g.N()
	w := &dfsWalker{
		walker: newWalker(g, dopts.Recorder),
		opts:   dopts,
		res: DFSResult{
			Depth:   make([]int, n),
			Parent:  make([]int, n),
			Visited: make([]bool, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// 4. Traverse: single tree, then the rest of the forest if requested
	w.res.Outcome = trace.OutcomeCancelled
	if !w.traverse(start, 0) {
		return w.result(), nil
	}
	if dopts.FullTraversal {
		for v := range n {
			if !w.res.Visited[v] && !w.traverse(v, 0) {
				return w.result(), nil
			}
		}
	}

	w.res.Outcome = trace.OutcomeSuccess
	res := w.result()
	w.em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "visited %d of %d nodes", len(res.PreOrder), n)

	return res, nil
}

// traverse visits id at depth and recurses into unvisited neighbors.
// It returns false once the recorder stops.
func (w *dfsWalker) traverse(id, depth int) bool {
	// 1. Discover
	w.enter(id)
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)
	if !w.em.Emitf(trace.EventVisit, trace.DelayVisit, w.snapshot(id, nil), []int{id},
		"discover %d at depth %d", id, depth) {
		return false
	}

	// 2. Explore each neighbor in insertion order; MaxDepth bounds recursion
	for _, e := range w.graph.Neighbors(id) {
		edge := e
		if !w.em.Emitf(trace.EventCompare, trace.DelayCompare, w.snapshot(id, &edge), []int{id, e.To},
			"edge %d→%d (%s)", id, e.To, colorName(w.color[e.To])) {
			return false
		}
		if w.res.Visited[e.To] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[e.To] = id
		if !w.traverse(e.To, depth+1) {
			return false
		}
	}

	// 3. Finish
	w.leave(id)
	w.order = append(w.order, id)

	return w.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, w.snapshot(id, nil), []int{id},
		"finish %d", id)
}

func (w *dfsWalker) result() DFSResult {
	res := w.res
	res.PreOrder = append([]int(nil), w.res.PreOrder...)
	res.Order = append([]int(nil), w.order...)
	res.Depth = append([]int(nil), w.res.Depth...)
	res.Parent = append([]int(nil), w.res.Parent...)
	res.Visited = append([]bool(nil), w.res.Visited...)

	return res
}

func colorName(c int) string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	default:
		return "black"
	}
}
