package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. source, and the target if set, must be in [0, n) (ErrVertexNotFound).
//  4. MaxDistance ≥ 0 (ErrBadMaxDistance), InfEdgeThreshold > 0 (ErrBadInfThreshold).
//
// A stopped recorder is not an error: the partial Result has OutcomeCancelled.
// An unreachable target yields OutcomeNoSolution.
func Dijkstra(g *core.Graph, source int, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Weighted() {
		return Result{}, ErrUnweightedGraph
	}
	n := g.N()
	if source < 0 || source >= n {
		return Result{}, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if cfg.Target < -1 || cfg.Target >= n {
		return Result{}, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}
	if cfg.MaxDistance < 0 {
		return Result{}, ErrBadMaxDistance
	}
	if cfg.InfEdgeThreshold <= 0 {
		return Result{}, ErrBadInfThreshold
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		em:      trace.NewEmitter(cfg.Recorder),
	}
	r.init()
	res := r.process()

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	source  int
	dist    []int64
	prev    []int
	visited []bool
	order   []int
	pq      nodePQ
	em      *trace.Emitter
}

// init sets dist to Inf everywhere except the source and pushes the source.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Inf
		r.prev[v] = -1
	}
	r.dist[r.source] = 0
	r.pq.push(r.source, 0)
}

// process is the main loop. It ends when the heap is empty, the next entry
// exceeds MaxDistance, the target is settled, or the recorder stops.
func (r *runner) process() Result {
	if !r.em.Emitf(trace.EventInit, trace.DelayVisit, r.snapshot(-1, nil), []int{r.source},
		"start at %d", r.source) {
		return r.result(trace.OutcomeCancelled)
	}

	target := r.options.Target
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (dist, seq) entry.
		item := r.pq.pop()
		u := item.id

		// 2) Stale entry: a shorter one already settled u.
		if r.visited[u] {
			if !r.em.Emitf(trace.EventDiscard, trace.DelayCompare, r.snapshot(u, nil), []int{u},
				"skip stale entry (%d, d=%d)", u, item.dist) {
				return r.result(trace.OutcomeCancelled)
			}
			continue
		}

		// 3) Distance cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Settle u.
		r.visited[u] = true
		r.order = append(r.order, u)
		if !r.em.Emitf(trace.EventVisit, trace.DelayVisit, r.snapshot(u, nil), []int{u},
			"settle %d at distance %d", u, item.dist) {
			return r.result(trace.OutcomeCancelled)
		}

		// 5) Early exit.
		if u == target {
			if !r.em.Emitf(trace.EventFound, trace.DelayFound, r.snapshot(u, nil), r.pathTo(u),
				"reached target %d, cost %d", u, r.dist[u]) {
				return r.result(trace.OutcomeCancelled)
			}
			break
		}

		// 6) Relax outgoing edges.
		if !r.relax(u) {
			return r.result(trace.OutcomeCancelled)
		}
	}

	outcome := trace.OutcomeSuccess
	if target >= 0 && !r.visited[target] {
		outcome = trace.OutcomeNoSolution
	}
	res := r.result(outcome)
	msg := fmt.Sprintf("settled %d of %d nodes", len(res.Order), len(r.dist))
	if target >= 0 {
		if outcome == trace.OutcomeNoSolution {
			msg = fmt.Sprintf("target %d unreachable", target)
		} else {
			msg = fmt.Sprintf("shortest %d→%d costs %d", r.source, target, res.Cost)
		}
	}
	r.em.Emit(trace.EventDone, trace.DelayDone, msg, res)

	return res
}

// relax examines each edge leaving u. Improvements update dist/prev and push
// a fresh heap entry. It returns false once the recorder stops.
func (r *runner) relax(u int) bool {
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if r.visited[v] || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		edge := e
		newDist := Inf // saturates instead of wrapping past Inf
		if e.Weight < Inf-r.dist[u] {
			newDist = r.dist[u] + e.Weight
		}
		if newDist >= r.dist[v] || newDist > r.options.MaxDistance {
			if !r.em.Emitf(trace.EventCompare, trace.DelayCompare, r.snapshot(u, &edge), []int{u, v},
				"%d→%d: %s ≥ %s, keep", u, v, distString(newDist), distString(r.dist[v])) {
				return false
			}
			continue
		}
		old := r.dist[v]
		r.dist[v] = newDist
		r.prev[v] = u
		r.pq.push(v, newDist)
		if !r.em.Emitf(trace.EventUpdate, trace.DelayUpdate, r.snapshot(u, &edge), []int{u, v},
			"%d→%d: %s → %d", u, v, distString(old), newDist) {
			return false
		}
	}

	return true
}

// pathTo walks prev back from v.
func (r *runner) pathTo(v int) []int {
	return Result{Dist: r.dist, Prev: r.prev}.PathTo(v)
}

func (r *runner) snapshot(current int, edge *core.Edge) Snapshot {
	return Snapshot{
		Dist:     slices.Clone(r.dist),
		Prev:     slices.Clone(r.prev),
		Settled:  slices.Clone(r.visited),
		Frontier: r.pq.entries(),
		Current:  current,
		Edge:     edge,
	}
}

func (r *runner) result(outcome trace.Outcome) Result {
	res := Result{
		Source:  r.source,
		Target:  r.options.Target,
		Dist:    slices.Clone(r.dist),
		Prev:    slices.Clone(r.prev),
		Order:   slices.Clone(r.order),
		Cost:    Inf,
		Outcome: outcome,
	}
	if t := res.Target; t >= 0 && outcome == trace.OutcomeSuccess {
		res.Path = res.PathTo(t)
		res.Cost = res.Dist[t]
	}

	return res
}

func distString(d int64) string {
	if d == Inf {
		return "∞"
	}

	return fmt.Sprint(d)
}
