package backtrack

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/stepviz/trace"
)

// Grid is a 9×9 Sudoku board; 0 marks an empty cell.
type Grid [9][9]int

// SudokuSnapshot is the board state at one step. Grid is an array, so every
// snapshot owns its copy.
type SudokuSnapshot struct {
	Grid       Grid
	Row, Col   int   // cell being branched on, -1 if none
	Candidates []int // digits still allowed in that cell
	Depth      int   // filled cells beyond the givens
	Found      int
}

// SudokuResult is carried by the EventDone step of Sudoku.
type SudokuResult struct {
	Solutions []Grid // in visit order
	Outcome   trace.Outcome
}

// Status implements trace.Outcomer.
func (r SudokuResult) Status() trace.Outcome { return r.Outcome }

type sudoku struct {
	search
	grid       Grid
	rows, cols [9]uint16 // bit d set: digit d used
	boxes      [9]uint16
	depth      int
	solutions  []Grid
}

// Sudoku solves grid and reports every solution (or up to WithMaxSolutions).
//
// Steps:
//  1. Reject cells outside 0..9 (ErrBadCell).
//  2. Load the givens; a duplicate in a row, column or box is OutcomeNoSolution.
//  3. Pick the most constrained empty cell; none left means a solution.
//  4. Try its candidates in ascending order, recursing and undoing each one.
func Sudoku(grid Grid, opts ...Option) (SudokuResult, error) {
	for r := range 9 {
		for c := range 9 {
			if v := grid[r][c]; v < 0 || v > 9 {
				return SudokuResult{}, fmt.Errorf("%w: (%d,%d)=%d", ErrBadCell, r, c, v)
			}
		}
	}
	cfg := buildOptions(opts)
	s := &sudoku{search: search{em: trace.NewEmitter(cfg.Recorder), max: cfg.MaxSolutions}}

	if conflict := s.load(grid); conflict != "" {
		res := SudokuResult{Outcome: trace.OutcomeNoSolution}
		if s.em.Emitf(trace.EventDiscard, trace.DelayCompare, s.snapshot(-1, -1, nil), nil, "invalid givens: %s", conflict) {
			s.em.Emit(trace.EventDone, trace.DelayDone, "no solution", res)
		} else {
			res.Outcome = trace.OutcomeCancelled
		}

		return res, nil
	}

	if s.em.Emit(trace.EventInit, trace.DelayVisit, "givens loaded", s.snapshot(-1, -1, nil)) {
		s.solve()
	}

	res := SudokuResult{Solutions: s.solutions, Outcome: s.outcome()}
	s.em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "%d solutions", len(s.solutions))

	return res, nil
}

// load copies the givens into the masks and reports the first conflict.
func (s *sudoku) load(grid Grid) string {
	for r := range 9 {
		for c := range 9 {
			d := grid[r][c]
			if d == 0 {
				continue
			}
			bit := uint16(1) << d
			b := box(r, c)
			if s.rows[r]&bit != 0 || s.cols[c]&bit != 0 || s.boxes[b]&bit != 0 {
				return fmt.Sprintf("digit %d repeated at (%d,%d)", d, r, c)
			}
			s.set(r, c, d)
		}
	}

	return ""
}

func box(r, c int) int { return (r/3)*3 + c/3 }

func (s *sudoku) set(r, c, d int) {
	bit := uint16(1) << d
	s.grid[r][c] = d
	s.rows[r] |= bit
	s.cols[c] |= bit
	s.boxes[box(r, c)] |= bit
}

func (s *sudoku) unset(r, c int) {
	bit := ^(uint16(1) << s.grid[r][c])
	s.grid[r][c] = 0
	s.rows[r] &= bit
	s.cols[c] &= bit
	s.boxes[box(r, c)] &= bit
}

// free returns the candidate mask of an empty cell (bits 1..9).
func (s *sudoku) free(r, c int) uint16 {
	const all uint16 = 0x3FE

	return all &^ (s.rows[r] | s.cols[c] | s.boxes[box(r, c)])
}

// pick scans in reading order and returns the first empty cell with the
// strictly fewest candidates. ok is false when the board is full.
func (s *sudoku) pick() (row, col int, mask uint16, ok bool) {
	best := 10
	for r := range 9 {
		for c := range 9 {
			if s.grid[r][c] != 0 {
				continue
			}
			m := s.free(r, c)
			if n := bits.OnesCount16(m); n < best {
				best, row, col, mask, ok = n, r, c, m, true
				if n == 0 {
					return row, col, mask, ok
				}
			}
		}
	}

	return row, col, mask, ok
}

func (s *sudoku) solve() {
	r, c, mask, ok := s.pick()
	if !ok {
		s.found++
		s.solutions = append(s.solutions, s.grid)
		s.em.Emitf(trace.EventFound, trace.DelayFound, s.snapshot(-1, -1, nil), nil, "solution %d", s.found)

		return
	}

	cands := digits(mask)
	if len(cands) == 0 {
		s.em.Emitf(trace.EventDiscard, trace.DelayCompare, s.snapshot(r, c, cands), []int{r*9 + c},
			"(%d,%d) has no candidate: dead end", r, c)

		return
	}
	if !s.em.Emitf(trace.EventVisit, trace.DelayVisit, s.snapshot(r, c, cands), []int{r*9 + c},
		"branch on (%d,%d) with candidates %v", r, c, cands) {
		return
	}

	for _, d := range cands {
		s.set(r, c, d)
		s.depth++
		if !s.em.Emitf(trace.EventUpdate, trace.DelayUpdate, s.snapshot(r, c, cands), []int{r*9 + c},
			"(%d,%d) = %d", r, c, d) {
			return
		}

		s.solve()

		s.unset(r, c)
		s.depth--
		if s.stop() {
			return
		}
		if !s.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, s.snapshot(r, c, cands), []int{r*9 + c},
			"undo (%d,%d) = %d", r, c, d) {
			return
		}
	}
}

func digits(mask uint16) []int {
	out := make([]int, 0, 9)
	for d := 1; d <= 9; d++ {
		if mask&(1<<d) != 0 {
			out = append(out, d)
		}
	}

	return out
}

func (s *sudoku) snapshot(r, c int, cands []int) SudokuSnapshot {
	return SudokuSnapshot{
		Grid:       s.grid,
		Row:        r,
		Col:        c,
		Candidates: append([]int(nil), cands...),
		Depth:      s.depth,
		Found:      s.found,
	}
}
