package backtrack

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/trace"
)

// QueensSnapshot is the board state at one step.
type QueensSnapshot struct {
	N      int
	Queens []int // column per row, -1 for rows not yet placed
	Row    int   // row being filled
	Col    int   // column under test, -1 if none
	Found  int   // solutions so far
}

// QueensResult is carried by the EventDone step of NQueens.
type QueensResult struct {
	N         int
	Solutions [][]int // column per row, in visit order
	Outcome   trace.Outcome
}

// Status implements trace.Outcomer.
func (r QueensResult) Status() trace.Outcome { return r.Outcome }

type queens struct {
	search
	n          int
	queens     []int
	cols       []bool
	diag, anti []bool // r+c and r-c+n-1
	solutions  [][]int
}

// NQueens places n non-attacking queens on an n×n board and reports every solution.
func NQueens(n int, opts ...Option) (QueensResult, error) {
	if n < 1 {
		return QueensResult{}, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	cfg := buildOptions(opts)
	q := &queens{
		search: search{em: trace.NewEmitter(cfg.Recorder), max: cfg.MaxSolutions},
		n:      n,
		queens: make([]int, n),
		cols:   make([]bool, n),
		diag:   make([]bool, 2*n-1),
		anti:   make([]bool, 2*n-1),
	}
	for i := range q.queens {
		q.queens[i] = -1
	}

	if q.em.Emitf(trace.EventInit, trace.DelayVisit, q.snapshot(0, -1), nil, "empty %dx%d board", n, n) {
		q.place(0)
	}

	res := QueensResult{N: n, Solutions: q.solutions, Outcome: q.outcome()}
	q.em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "%d solutions", len(q.solutions))

	return res, nil
}

// place tries every column of row in ascending order.
func (q *queens) place(row int) {
	if row == q.n {
		q.found++
		q.solutions = append(q.solutions, slices.Clone(q.queens))
		q.em.Emitf(trace.EventFound, trace.DelayFound, q.snapshot(row, -1), q.queens,
			"solution %d: %v", q.found, q.queens)

		return
	}

	for col := 0; col < q.n; col++ {
		d, a := row+col, row-col+q.n-1
		if !q.em.Emitf(trace.EventCompare, trace.DelayCompare, q.snapshot(row, col), []int{row, col},
			"try row %d col %d", row, col) {
			return
		}
		if q.cols[col] || q.diag[d] || q.anti[a] {
			if !q.em.Emitf(trace.EventDiscard, trace.DelayCompare, q.snapshot(row, col), []int{row, col},
				"(%d,%d) is attacked", row, col) {
				return
			}
			continue
		}

		q.queens[row] = col
		q.cols[col], q.diag[d], q.anti[a] = true, true, true
		if !q.em.Emitf(trace.EventUpdate, trace.DelayUpdate, q.snapshot(row, col), []int{row, col},
			"place queen at (%d,%d)", row, col) {
			return
		}

		q.place(row + 1)

		q.queens[row] = -1
		q.cols[col], q.diag[d], q.anti[a] = false, false, false
		if q.stop() {
			return
		}
		if !q.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, q.snapshot(row, col), []int{row, col},
			"remove queen from (%d,%d)", row, col) {
			return
		}
	}
}

func (q *queens) snapshot(row, col int) QueensSnapshot {
	return QueensSnapshot{
		N:      q.n,
		Queens: slices.Clone(q.queens),
		Row:    row,
		Col:    col,
		Found:  q.found,
	}
}
