package validate

import (
	"fmt"

	"github.com/katalvlaran/stepviz/backtrack"
	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/mo"
)

// SearchParams is a KMP text/pattern pair.
type SearchParams struct {
	Text    string `validate:"max=50"`
	Pattern string `validate:"required,max=50"`
}

// Search validates a KMP input.
func Search(p SearchParams) error { return check(p) }

// PartitionParams is a palindrome-partition input.
type PartitionParams struct {
	Text string `validate:"max=16"`
}

// Partition validates a palindrome-partition input.
func Partition(p PartitionParams) error { return check(p) }

// QueensParams selects an N-Queens board.
type QueensParams struct {
	N int `validate:"oneof=4 5 6 8"`
}

// Queens validates an N-Queens board size.
func Queens(p QueensParams) error { return check(p) }

// SudokuParams is a 9×9 board, 0 for empty.
type SudokuParams struct {
	Grid backtrack.Grid `validate:"dive,dive,min=0,max=9"`
}

// Sudoku validates the digits of a board. Conflicting givens are not an
// input error; the solver reports them as a no-solution outcome.
func Sudoku(p SudokuParams) error { return check(p) }

// RangeParams is a Mo's algorithm batch.
type RangeParams struct {
	Values  []int      `validate:"min=1,max=64"`
	Queries []mo.Query `validate:"min=1,max=32"`
}

// Ranges validates a batch: every query satisfies 0 <= L <= R < len(Values).
func Ranges(p RangeParams) error {
	if err := check(p); err != nil {
		return err
	}
	for i, q := range p.Queries {
		if q.L < 0 || q.R >= len(p.Values) || q.L > q.R {
			return invalid(fmt.Sprintf("Queries[%d]", i), "[%d, %d] outside [0, %d)", q.L, q.R, len(p.Values))
		}
	}

	return nil
}

// TreeParams is an undirected tree for heavy-light decomposition.
type TreeParams struct {
	Nodes int      `validate:"min=2,max=32"`
	Edges [][2]int `validate:"required"`
	Root  int      `validate:"min=0"`
}

// Tree validates that Edges form one tree over Nodes with Root inside it.
// A union-find pass rejects cycles; with n-1 edges that also proves
// connectivity.
func Tree(p TreeParams) error {
	if err := check(p); err != nil {
		return err
	}
	if p.Root >= p.Nodes {
		return invalid("Root", "node %d out of range [0, %d)", p.Root, p.Nodes)
	}
	if len(p.Edges) != p.Nodes-1 {
		return invalid("Edges", "a tree on %d nodes has %d edges, got %d", p.Nodes, p.Nodes-1, len(p.Edges))
	}
	forest, err := dsu.New(p.Nodes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for i, e := range p.Edges {
		field := fmt.Sprintf("Edges[%d]", i)
		if e[0] < 0 || e[1] < 0 || e[0] >= p.Nodes || e[1] >= p.Nodes {
			return invalid(field, "endpoint out of range [0, %d)", p.Nodes)
		}
		if e[0] == e[1] {
			return invalid(field, "self-loop on %d", e[0])
		}
		merged, _ := forest.Union(e[0], e[1])
		if !merged {
			return invalid(field, "%d-%d closes a cycle", e[0], e[1])
		}
	}

	return nil
}

// UnionFindParams is a scripted DSU run.
type UnionFindParams struct {
	Nodes int      `validate:"min=2,max=10"`
	Ops   []dsu.Op `validate:"min=1,max=32"`
}

// UnionFind validates operation kinds and operands.
func UnionFind(p UnionFindParams) error {
	if err := check(p); err != nil {
		return err
	}
	for i, op := range p.Ops {
		field := fmt.Sprintf("Ops[%d]", i)
		if op.X < 0 || op.X >= p.Nodes {
			return invalid(field, "operand %d out of range [0, %d)", op.X, p.Nodes)
		}
		switch op.Kind {
		case dsu.OpFind:
		case dsu.OpUnion:
			if op.Y < 0 || op.Y >= p.Nodes {
				return invalid(field, "operand %d out of range [0, %d)", op.Y, p.Nodes)
			}
		default:
			return invalid(field, "unknown operation %v", op.Kind)
		}
	}

	return nil
}

// WordsParams is a trie word list.
type WordsParams struct {
	Words []string `validate:"min=1,max=16,dive,required,max=20,alpha,lowercase"`
}

// Words validates a trie word list.
func Words(p WordsParams) error { return check(p) }
