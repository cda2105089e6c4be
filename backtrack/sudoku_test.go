package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/backtrack"
	"github.com/katalvlaran/stepviz/trace"
)

func parse(rows ...string) backtrack.Grid {
	var g backtrack.Grid
	for r, line := range rows {
		for c, ch := range line {
			if ch >= '1' && ch <= '9' {
				g[r][c] = int(ch - '0')
			}
		}
	}

	return g
}

var (
	classic = parse(
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	)
	classicSolution = parse(
		"534678912",
		"672195348",
		"198342567",
		"859761423",
		"426853791",
		"713924856",
		"961537284",
		"287419635",
		"345286179",
	)
)

func TestSudoku_Classic(t *testing.T) {
	res, err := backtrack.Sudoku(classic)
	require.NoError(t, err)
	require.Len(t, res.Solutions, 1)
	assert.Equal(t, classicSolution, res.Solutions[0])
	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)
}

func TestSudoku_BadCell(t *testing.T) {
	g := classic
	g[4][4] = 12
	_, err := backtrack.Sudoku(g)
	assert.ErrorIs(t, err, backtrack.ErrBadCell)
}

func TestSudoku_InvalidGivens(t *testing.T) {
	g := classic
	g[0][2] = 5 // second 5 in row 0
	tape := &trace.Tape{}
	res, err := backtrack.Sudoku(g, backtrack.WithRecorder(tape))
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeNoSolution, res.Outcome)
	assert.Equal(t, []trace.Event{trace.EventDiscard, trace.EventDone}, tape.Events())
}

func TestSudoku_DeadEnd(t *testing.T) {
	// (0,8) can only be 9, which column 8 already holds.
	g := parse(
		"12345678.",
		"........9",
	)
	res, err := backtrack.Sudoku(g)
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeNoSolution, res.Outcome)
	assert.Empty(t, res.Solutions)
}

func TestSudoku_MostConstrainedFirst(t *testing.T) {
	// Every cell of the empty board ties at 9 candidates: (0,0) wins by scan
	// order. After 1 is placed there, (0,1) is the first cell with 8.
	tape := &trace.Tape{Limit: 5}
	_, err := backtrack.Sudoku(backtrack.Grid{}, backtrack.WithRecorder(tape))
	require.NoError(t, err)

	var cells [][2]int
	for _, s := range tape.Steps {
		if s.Event == trace.EventVisit {
			snap := s.State.(backtrack.SudokuSnapshot)
			cells = append(cells, [2]int{snap.Row, snap.Col})
		}
	}
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}}, cells)

	// A later cell with one candidate beats an earlier cell with five.
	g := classicSolution
	for i := range 9 {
		g[0][i], g[i][0] = 0, 0
	}
	tape = &trace.Tape{Limit: 2}
	_, err = backtrack.Sudoku(g, backtrack.WithRecorder(tape))
	require.NoError(t, err)
	snap := tape.Steps[1].State.(backtrack.SudokuSnapshot)
	assert.Equal(t, []int{0, 1}, []int{snap.Row, snap.Col})
	assert.Equal(t, []int{3}, snap.Candidates)
}

func TestSudoku_MaxSolutions(t *testing.T) {
	res, err := backtrack.Sudoku(backtrack.Grid{}, backtrack.WithMaxSolutions(2))
	require.NoError(t, err)
	assert.Len(t, res.Solutions, 2)
	assert.NotEqual(t, res.Solutions[0], res.Solutions[1])
}
