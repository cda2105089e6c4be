package prim_kruskal

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/trace"
)

// Kruskal computes the minimum spanning tree of an undirected, weighted graph.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed().
//  2. Stable-sort graph.Edges() by ascending weight.
//  3. For each edge: if dsu.Find(u) != dsu.Find(v), accept and union; otherwise reject.
//  4. Stop once n-1 edges are accepted. Fewer means the graph is disconnected.
func Kruskal(graph *core.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(graph); err != nil {
		return Result{}, err
	}

	// 1. Sort a copy of the edges; SortStableFunc keeps insertion order for equal weights.
	edges := graph.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		default:
			return 0
		}
	})

	if graph.N() == 0 {
		res := Result{Method: MethodKruskal, Outcome: trace.OutcomeSuccess}
		trace.NewEmitter(cfg.Recorder).Emit(trace.EventDone, trace.DelayDone, "empty graph", res)

		return res, nil
	}
	forest, err := dsu.New(graph.N())
	if err != nil {
		return Result{}, fmt.Errorf("prim_kruskal: %w", err)
	}
	k := &kruskal{
		n:      graph.N(),
		edges:  edges,
		forest: forest,
		em:     trace.NewEmitter(cfg.Recorder),
	}

	return k.run(), nil
}

type kruskal struct {
	n      int
	edges  []core.Edge
	next   int // index of the first edge not yet considered
	forest *dsu.Forest
	tree   []core.Edge
	total  int64
	em     *trace.Emitter
}

// root finds the set of x. Edges come from the graph being spanned, so an
// out-of-range node is a bug.
func (k *kruskal) root(x int) int {
	r, err := k.forest.Find(x)
	if err != nil {
		panic(fmt.Sprintf("prim_kruskal: find %d: %v", x, err))
	}

	return r
}

func (k *kruskal) run() Result {
	if !k.em.Emitf(trace.EventInit, trace.DelayVisit, k.snapshot(nil), nil,
		"%d edges sorted by weight", len(k.edges)) {
		return k.result(trace.OutcomeCancelled)
	}

	for k.next < len(k.edges) && len(k.tree) < k.n-1 {
		e := k.edges[k.next]
		k.next++
		if !k.em.Emitf(trace.EventCompare, trace.DelayCompare, k.snapshot(&e), []int{e.From, e.To},
			"consider %d–%d (w=%d)", e.From, e.To, e.Weight) {
			return k.result(trace.OutcomeCancelled)
		}

		ru, rv := k.root(e.From), k.root(e.To)
		if ru == rv {
			if !k.em.Emitf(trace.EventDiscard, trace.DelayCompare, k.snapshot(&e), []int{e.From, e.To},
				"reject %d–%d: would close a cycle", e.From, e.To) {
				return k.result(trace.OutcomeCancelled)
			}
			continue
		}

		if _, err := k.forest.Union(ru, rv); err != nil {
			panic(fmt.Sprintf("prim_kruskal: union %d-%d: %v", ru, rv, err))
		}
		k.tree = append(k.tree, e)
		k.total += e.Weight
		if !k.em.Emitf(trace.EventUpdate, trace.DelayUpdate, k.snapshot(&e), []int{e.From, e.To},
			"accept %d–%d, total %d", e.From, e.To, k.total) {
			return k.result(trace.OutcomeCancelled)
		}
	}

	outcome := trace.OutcomeSuccess
	msg := fmt.Sprintf("spanning tree weight %d", k.total)
	if len(k.tree) < k.n-1 {
		outcome = trace.OutcomeNoSolution
		msg = fmt.Sprintf("graph is disconnected: forest of %d trees, weight %d", k.forest.Count(), k.total)
	}
	res := k.result(outcome)
	k.em.Emit(trace.EventDone, trace.DelayDone, msg, res)

	return res
}

func (k *kruskal) snapshot(candidate *core.Edge) Snapshot {
	return Snapshot{
		Tree:      slices.Clone(k.tree),
		Total:     k.total,
		Candidate: candidate,
		Remaining: slices.Clone(k.edges[k.next:]),
		Component: k.forest.Roots(),
	}
}

func (k *kruskal) result(outcome trace.Outcome) Result {
	return Result{
		Method:  MethodKruskal,
		Edges:   slices.Clone(k.tree),
		Total:   k.total,
		Outcome: outcome,
	}
}
