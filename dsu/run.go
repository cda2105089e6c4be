package dsu

import (
	"fmt"

	"github.com/katalvlaran/stepviz/trace"
)

// Run applies ops to a fresh forest of n elements and publishes each phase.
//
// Steps per OpFind:
//  1. visit   – path from the operand to its root, before compression.
//  2. update  – the same path after every element was pointed at the root.
//
// Steps per OpUnion:
//  1. find steps (as above) for X, then Y.
//  2. compare – ranks of the two roots.
//  3. update  – the link, or discard when both share a root already.
//
// Run returns an error only for invalid input; a stopped recorder yields a
// partial Result with OutcomeCancelled.
func Run(n int, ops []Op, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := New(n)
	if err != nil {
		return Result{}, err
	}
	for i, op := range ops {
		if op.Kind != OpFind && op.Kind != OpUnion {
			return Result{}, fmt.Errorf("%w: op %d kind %q", ErrBadOp, i, op.Kind)
		}
		if err = f.check(op.X); err != nil {
			return Result{}, fmt.Errorf("op %d: %w", i, err)
		}
		if op.Kind == OpUnion {
			if err = f.check(op.Y); err != nil {
				return Result{}, fmt.Errorf("op %d: %w", i, err)
			}
		}
	}

	r := &runner{f: f, em: trace.NewEmitter(cfg.Recorder)}

	return r.run(ops), nil
}

type runner struct {
	f   *Forest
	em  *trace.Emitter
	res Result
}

func (r *runner) run(ops []Op) Result {
	r.res.Outcome = trace.OutcomeCancelled
	if !r.em.Emit(trace.EventInit, trace.DelayVisit, fmt.Sprintf("%d singleton sets", r.f.Len()), r.f.snapshot(Op{}, nil, -1)) {
		return r.finish()
	}

	for _, op := range ops {
		var ok bool
		switch op.Kind {
		case OpFind:
			var root int
			root, ok = r.find(op, op.X)
			if ok {
				r.res.Roots = append(r.res.Roots, root)
			}
		case OpUnion:
			ok = r.union(op)
		}
		if !ok {
			return r.finish()
		}
	}

	r.res.Outcome = trace.OutcomeSuccess
	r.finish()
	r.em.Emit(trace.EventDone, trace.DelayDone, fmt.Sprintf("%d sets remain", r.f.Count()), r.res)

	return r.res
}

// find publishes the walk and the compression of x's path.
func (r *runner) find(op Op, x int) (int, bool) {
	root, path := r.f.walk(x)
	if !r.em.Emit(trace.EventVisit, trace.DelayVisit,
		fmt.Sprintf("find(%d): walked %v to root %d", x, path, root),
		r.f.snapshot(op, path, root), path...) {
		return root, false
	}
	r.f.compress(path, root)

	return root, r.em.Emit(trace.EventUpdate, trace.DelayUpdate,
		fmt.Sprintf("find(%d): path compressed onto %d", x, root),
		r.f.snapshot(op, path, root), path...)
}

func (r *runner) union(op Op) bool {
	rx, ok := r.find(op, op.X)
	if !ok {
		return false
	}
	ry, ok := r.find(op, op.Y)
	if !ok {
		return false
	}
	if rx == ry {
		r.res.Merged = append(r.res.Merged, false)

		return r.em.Emit(trace.EventDiscard, trace.DelayCompare,
			fmt.Sprintf("union(%d,%d): already in set %d", op.X, op.Y, rx),
			r.f.snapshot(op, nil, rx), rx)
	}
	if !r.em.Emit(trace.EventCompare, trace.DelayCompare,
		fmt.Sprintf("union(%d,%d): rank[%d]=%d vs rank[%d]=%d", op.X, op.Y, rx, r.f.rank[rx], ry, r.f.rank[ry]),
		r.f.snapshot(op, nil, -1), rx, ry) {
		return false
	}
	r.f.link(rx, ry)
	r.res.Merged = append(r.res.Merged, true)
	root := r.f.parent[rx]

	return r.em.Emit(trace.EventUpdate, trace.DelayUpdate,
		fmt.Sprintf("union(%d,%d): linked under %d", op.X, op.Y, root),
		r.f.snapshot(op, nil, root), rx, ry)
}

// finish fills the state part of the result.
func (r *runner) finish() Result {
	s := r.f.snapshot(Op{}, nil, -1)
	r.res.Parent = s.Parent
	r.res.Rank = s.Rank
	r.res.Sets = r.f.Sets()

	return r.res
}
