package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// SCC finds strongly connected components with Kosaraju's algorithm.
//
// Steps:
//  1. Pass 1: DFS over g from nodes 0..n-1; a node is pushed on the finish
//     stack when all its descendants are done.
//  2. Build g.Reverse().
//  3. Pass 2: pop the finish stack; every still-white node roots a DFS over
//     the reversed graph, and the nodes it reaches form one component.
//
// On an undirected graph the components are the connected components.
func SCC(g *core.Graph, opts ...Option) (SCCResult, error) {
	if g == nil {
		return SCCResult{}, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.N()
	w := newWalker(g, dopts.Recorder)
	w.comp = make([]int, n)
	for i := range w.comp {
		w.comp[i] = -1
	}
	cancelled := SCCResult{Outcome: trace.OutcomeCancelled}

	// 1. Pass 1
	w.reset(g, 1)
	for v := range n {
		if w.color[v] == White && !firstPass(w, v) {
			return cancelled, nil
		}
	}
	finish := slices.Clone(w.order)

	// 2. Transpose
	rev := g.Reverse()
	w.reset(rev, 2)
	if !w.em.Emitf(trace.EventUpdate, trace.DelayUpdate, w.snapshot(-1, nil), nil,
		"reverse every edge; finish stack %v", finish) {
		return cancelled, nil
	}

	// 3. Pass 2
	var comps [][]int
	for i := len(finish) - 1; i >= 0; i-- {
		v := finish[i]
		if w.color[v] != White {
			continue
		}
		var members []int
		if !secondPass(w, v, len(comps), &members) {
			return cancelled, nil
		}
		slices.Sort(members)
		comps = append(comps, members)
		if !w.em.Emitf(trace.EventFound, trace.DelayFound, w.snapshot(v, nil), members,
			"component %d: %v", len(comps)-1, members) {
			return cancelled, nil
		}
	}

	res := SCCResult{
		Components:  comps,
		ComponentOf: slices.Clone(w.comp),
		Finish:      finish,
		Outcome:     trace.OutcomeSuccess,
	}
	w.em.Emit(trace.EventDone, trace.DelayDone, fmt.Sprintf("%d strongly connected components", len(comps)), res)

	return res, nil
}

// firstPass records the finish order of the DFS tree rooted at u.
func firstPass(w *walker, u int) bool {
	w.enter(u)
	if !w.em.Emitf(trace.EventVisit, trace.DelayVisit, w.snapshot(u, nil), []int{u}, "pass 1: enter %d", u) {
		return false
	}
	for _, e := range w.graph.Neighbors(u) {
		if w.color[e.To] != White {
			continue
		}
		if !firstPass(w, e.To) {
			return false
		}
	}
	w.leave(u)
	w.order = append(w.order, u)

	return w.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, w.snapshot(u, nil), []int{u},
		"pass 1: finish %d, push on stack", u)
}

// secondPass labels every node reachable from u in the reversed graph.
func secondPass(w *walker, u, id int, members *[]int) bool {
	w.enter(u)
	w.comp[u] = id
	*members = append(*members, u)
	if !w.em.Emitf(trace.EventVisit, trace.DelayVisit, w.snapshot(u, nil), []int{u},
		"pass 2: %d joins component %d", u, id) {
		return false
	}
	for _, e := range w.graph.Neighbors(u) {
		if w.color[e.To] != White {
			continue
		}
		if !secondPass(w, e.To, id, members) {
			return false
		}
	}
	w.leave(u)

	return true
}
