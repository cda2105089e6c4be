package prim_kruskal

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// Prim computes the minimum spanning tree by growing outwards from root.
//
// Steps:
//  1. Validate: graph != nil, weighted, undirected; root in [0, n).
//  2. Mark root visited and push its edges.
//  3. Pop the smallest (weight, seq) edge. Skip it if its far endpoint is visited;
//     otherwise accept it, mark the endpoint and push its edges to unvisited nodes.
//  4. When the heap empties before n-1 edges, restart from the smallest
//     unvisited node so the result is a spanning forest.
func Prim(graph *core.Graph, root int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(graph); err != nil {
		return Result{}, err
	}
	if root < 0 || root >= graph.N() {
		return Result{}, fmt.Errorf("%w: %d", ErrBadRoot, root)
	}

	p := &prim{
		g:       graph,
		visited: make([]bool, graph.N()),
		em:      trace.NewEmitter(cfg.Recorder),
	}

	return p.run(root), nil
}

type prim struct {
	g       *core.Graph
	visited []bool
	pq      edgePQ
	tree    []core.Edge
	total   int64
	trees   int
	em      *trace.Emitter
}

func (p *prim) run(root int) Result {
	n := p.g.N()
	if !p.em.Emitf(trace.EventInit, trace.DelayVisit, p.snapshot(nil), []int{root}, "grow from %d", root) {
		return p.result(trace.OutcomeCancelled)
	}

	start := root
	for start >= 0 {
		p.trees++
		if !p.enter(start) {
			return p.result(trace.OutcomeCancelled)
		}
		for p.pq.Len() > 0 && len(p.tree) < n-1 {
			e := p.pq.pop()
			if !p.em.Emitf(trace.EventCompare, trace.DelayCompare, p.snapshot(&e), []int{e.From, e.To},
				"pop %d–%d (w=%d)", e.From, e.To, e.Weight) {
				return p.result(trace.OutcomeCancelled)
			}
			if p.visited[e.To] {
				if !p.em.Emitf(trace.EventDiscard, trace.DelayCompare, p.snapshot(&e), []int{e.To},
					"skip %d–%d: %d already in tree", e.From, e.To, e.To) {
					return p.result(trace.OutcomeCancelled)
				}
				continue
			}
			p.tree = append(p.tree, e)
			p.total += e.Weight
			if !p.em.Emitf(trace.EventUpdate, trace.DelayUpdate, p.snapshot(&e), []int{e.From, e.To},
				"accept %d–%d, total %d", e.From, e.To, p.total) {
				return p.result(trace.OutcomeCancelled)
			}
			if !p.enter(e.To) {
				return p.result(trace.OutcomeCancelled)
			}
		}
		start = slices.Index(p.visited, false)
	}

	outcome := trace.OutcomeSuccess
	msg := fmt.Sprintf("spanning tree weight %d", p.total)
	if p.trees > 1 {
		outcome = trace.OutcomeNoSolution
		msg = fmt.Sprintf("graph is disconnected: forest of %d trees, weight %d", p.trees, p.total)
	}
	res := p.result(outcome)
	p.em.Emit(trace.EventDone, trace.DelayDone, msg, res)

	return res
}

// enter adds u to the tree and pushes its edges towards unvisited nodes.
func (p *prim) enter(u int) bool {
	p.visited[u] = true
	for _, e := range p.g.Neighbors(u) {
		if !p.visited[e.To] {
			p.pq.push(e)
		}
	}

	return p.em.Emitf(trace.EventVisit, trace.DelayVisit, p.snapshot(nil), []int{u}, "%d joins the tree", u)
}

func (p *prim) snapshot(candidate *core.Edge) Snapshot {
	return Snapshot{
		Tree:      slices.Clone(p.tree),
		Total:     p.total,
		Candidate: candidate,
		InTree:    slices.Clone(p.visited),
		Frontier:  p.pq.sorted(),
	}
}

func (p *prim) result(outcome trace.Outcome) Result {
	return Result{
		Method:  MethodPrim,
		Edges:   slices.Clone(p.tree),
		Total:   p.total,
		Outcome: outcome,
	}
}

// edgeItem is a heap entry; seq breaks weight ties by push order.
type edgeItem struct {
	edge core.Edge
	seq  int
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by (Weight, seq).
type edgePQ struct {
	items []edgeItem
	next  int
}

func (pq *edgePQ) Len() int { return len(pq.items) }

func (pq *edgePQ) Less(i, j int) bool { return itemLess(pq.items[i], pq.items[j]) }

func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(edgeItem)) }

func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}

func (pq *edgePQ) push(e core.Edge) {
	heap.Push(pq, edgeItem{edge: e, seq: pq.next})
	pq.next++
}

func (pq *edgePQ) pop() core.Edge {
	return heap.Pop(pq).(edgeItem).edge
}

// sorted lists the heap contents in pop order.
func (pq *edgePQ) sorted() []core.Edge {
	items := slices.Clone(pq.items)
	slices.SortFunc(items, func(a, b edgeItem) int {
		if itemLess(a, b) {
			return -1
		}
		if itemLess(b, a) {
			return 1
		}

		return 0
	})
	out := make([]core.Edge, len(items))
	for i, it := range items {
		out[i] = it.edge
	}

	return out
}

func itemLess(a, b edgeItem) bool {
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}
