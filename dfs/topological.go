package dfs

import (
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	*walker
	cycle []int
}

// TopologicalSort computes a topological ordering of all vertices in g.
//
// Roots are taken in index order and neighbors in insertion order, so the
// result is the reverse of that DFS's post-order. A back edge ends the run
// with OutcomeCycleDetected; the Result then has no Order and Cycle lists the
// nodes of the cycle, closed by repeating its first node.
func TopologicalSort(g *core.Graph, opts ...Option) (TopoResult, error) {
	// 1. Validate graph
	if g == nil {
		return TopoResult{}, ErrGraphNil
	}
	if !g.Directed() {
		return TopoResult{}, ErrUndirected
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Visit every white vertex
	s := &topoSorter{walker: newWalker(g, dopts.Recorder)}
	for v := range g.N() {
		if s.color[v] != White {
			continue
		}
		ok, acyclic := s.visit(v)
		if !ok {
			return TopoResult{Outcome: trace.OutcomeCancelled}, nil
		}
		if !acyclic {
			res := TopoResult{Cycle: s.cycle, Outcome: trace.OutcomeCycleDetected}
			s.em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "cycle %v: no topological order", s.cycle)

			return res, nil
		}
	}

	// 4. Reverse post-order
	order := slices.Clone(s.order)
	slices.Reverse(order)
	res := TopoResult{Order: order, Outcome: trace.OutcomeSuccess}
	s.em.Emitf(trace.EventDone, trace.DelayDone, res, order, "order %v", order)

	return res, nil
}

// visit returns (continue, acyclic).
func (s *topoSorter) visit(u int) (bool, bool) {
	s.enter(u)
	if !s.em.Emitf(trace.EventVisit, trace.DelayVisit, s.snapshot(u, nil), []int{u}, "enter %d", u) {
		return false, true
	}

	for _, e := range s.graph.Neighbors(u) {
		edge := e
		v := e.To
		switch s.color[v] {
		case Gray:
			start := slices.Index(s.stack, v)
			s.cycle = append(slices.Clone(s.stack[start:]), v)
			if !s.em.Emitf(trace.EventFound, trace.DelayFound, s.snapshot(u, &edge), s.cycle,
				"back edge %d→%d closes a cycle", u, v) {
				return false, false
			}

			return true, false
		case Black:
			if !s.em.Emitf(trace.EventCompare, trace.DelayCompare, s.snapshot(u, &edge), []int{u, v},
				"%d→%d: %d already finished", u, v, v) {
				return false, true
			}
		default:
			if !s.em.Emitf(trace.EventCompare, trace.DelayCompare, s.snapshot(u, &edge), []int{u, v},
				"%d→%d: descend", u, v) {
				return false, true
			}
			if ok, acyclic := s.visit(v); !ok || !acyclic {
				return ok, acyclic
			}
		}
	}

	s.leave(u)
	s.order = append(s.order, u)

	return s.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, s.snapshot(u, nil), []int{u},
		"finish %d", u), true
}
