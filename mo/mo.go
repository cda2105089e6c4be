package mo

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/stepviz/trace"
)

// BlockSize returns max(1, floor(sqrt(n))).
func BlockSize(n int) int {
	return max(1, int(math.Sqrt(float64(n))))
}

// Order returns the query indices sorted by (L/block, R). Ties keep input order.
func Order(queries []Query, block int) []int {
	order := make([]int, len(queries))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		qa, qb := queries[a], queries[b]
		if c := cmp.Compare(qa.L/block, qb.L/block); c != 0 {
			return c
		}

		return cmp.Compare(qa.R, qb.R)
	})

	return order
}

// Answer computes the sum and distinct count of every query.
//
// Steps:
//  1. Validate the queries; nothing runs on error.
//  2. Sort the queries by block of L, then R.
//  3. For each query slide the window edge by edge, one element per step.
//  4. Record the aggregate under the query's original index.
func Answer(values []int, queries []Query, opts ...Option) (Result, error) {
	if len(values) == 0 {
		return Result{}, ErrEmpty
	}
	for i, q := range queries {
		if q.L < 0 || q.R >= len(values) || q.L > q.R {
			return Result{}, fmt.Errorf("%w: query %d is [%d, %d] with n=%d", ErrBadQuery, i, q.L, q.R, len(values))
		}
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	block := BlockSize(len(values))
	w := &window{
		values:   values,
		queries:  queries,
		block:    block,
		order:    Order(queries, block),
		l:        0,
		r:        -1,
		freq:     make(map[int]int),
		answers:  make([]Aggregate, len(queries)),
		answered: make([]bool, len(queries)),
		query:    -1,
		em:       trace.NewEmitter(cfg.Recorder),
	}

	res := Result{Block: block, Order: slices.Clone(w.order), Outcome: trace.OutcomeCancelled}
	if w.run() {
		res.Outcome = trace.OutcomeSuccess
	}
	res.Answers = slices.Clone(w.answers)
	res.Moves = w.moves
	if res.Outcome == trace.OutcomeSuccess {
		w.em.Emitf(trace.EventDone, trace.DelayDone, res, nil,
			"%d queries answered with %d moves", len(queries), w.moves)
	}

	return res, nil
}

type window struct {
	values   []int
	queries  []Query
	block    int
	order    []int
	l, r     int
	sum      int
	distinct int
	freq     map[int]int
	answers  []Aggregate
	answered []bool
	query    int
	moves    int
	em       *trace.Emitter
}

// run reports false when the recorder stopped the run.
func (w *window) run() bool {
	if !w.em.Emitf(trace.EventInit, trace.DelayVisit, w.snapshot(), nil,
		"block size %d, order %v", w.block, w.order) {
		return false
	}
	for _, qi := range w.order {
		q := w.queries[qi]
		w.query = qi
		if !w.em.Emitf(trace.EventVisit, trace.DelayVisit, w.snapshot(), []int{q.L, q.R},
			"query %d: [%d, %d]", qi, q.L, q.R) {
			return false
		}

		for w.r < q.R {
			w.r++
			if !w.add(w.r) {
				return false
			}
		}
		for w.r > q.R {
			if !w.remove(w.r) {
				return false
			}
			w.r--
		}
		for w.l < q.L {
			if !w.remove(w.l) {
				return false
			}
			w.l++
		}
		for w.l > q.L {
			w.l--
			if !w.add(w.l) {
				return false
			}
		}

		w.answers[qi] = Aggregate{Sum: w.sum, Distinct: w.distinct}
		w.answered[qi] = true
		if !w.em.Emitf(trace.EventFound, trace.DelayFound, w.snapshot(), []int{q.L, q.R},
			"query %d: sum %d, distinct %d", qi, w.sum, w.distinct) {
			return false
		}
	}
	w.query = -1

	return true
}

func (w *window) add(i int) bool {
	v := w.values[i]
	w.sum += v
	w.freq[v]++
	if w.freq[v] == 1 {
		w.distinct++
	}
	w.moves++

	return w.em.Emitf(trace.EventUpdate, trace.DelayUpdate, w.snapshot(), []int{i},
		"add a[%d]=%d", i, v)
}

func (w *window) remove(i int) bool {
	v := w.values[i]
	w.sum -= v
	w.freq[v]--
	if w.freq[v] == 0 {
		w.distinct--
		delete(w.freq, v)
	}
	w.moves++

	return w.em.Emitf(trace.EventDiscard, trace.DelayCompare, w.snapshot(), []int{i},
		"remove a[%d]=%d", i, v)
}

func (w *window) snapshot() Snapshot {
	return Snapshot{
		Block:    w.block,
		Order:    slices.Clone(w.order),
		Query:    w.query,
		L:        w.l,
		R:        w.r,
		Sum:      w.sum,
		Distinct: w.distinct,
		Answers:  slices.Clone(w.answers),
		Answered: slices.Clone(w.answered),
		Moves:    w.moves,
	}
}
