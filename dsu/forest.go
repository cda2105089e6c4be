package dsu

import (
	"fmt"
	"slices"
)

// Forest is a disjoint-set forest. It is not safe for concurrent use.
type Forest struct {
	parent []int
	rank   []int
	count  int
}

// New returns a forest of n singleton sets.
func New(n int) (*Forest, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f, nil
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.count }

// Parent returns the current parent pointer of x.
func (f *Forest) Parent(x int) int { return f.parent[x] }

// Rank returns the rank of x (meaningful for roots only).
func (f *Forest) Rank(x int) int { return f.rank[x] }

func (f *Forest) check(x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(f.parent))
	}

	return nil
}

// Find returns the root of x and compresses the path it walked.
func (f *Forest) Find(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}
	root, path := f.walk(x)
	f.compress(path, root)

	return root, nil
}

// walk follows parent pointers from x and returns the root together with
// every element visited, x first and the root last.
func (f *Forest) walk(x int) (int, []int) {
	path := []int{x}
	for f.parent[x] != x {
		x = f.parent[x]
		path = append(path, x)
	}

	return x, path
}

// compress points every element of path at root.
func (f *Forest) compress(path []int, root int) {
	for _, v := range path {
		f.parent[v] = root
	}
}

// Union merges the sets containing x and y. It reports false when they were
// already in the same set.
func (f *Forest) Union(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}
	rx, _ := f.Find(x)
	ry, _ := f.Find(y)

	return f.link(rx, ry), nil
}

// link joins two roots by rank and reports whether they differed.
func (f *Forest) link(rx, ry int) bool {
	if rx == ry {
		return false
	}
	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.count--

	return true
}

// Connected reports whether x and y are in the same set.
// Out-of-range elements are never connected.
func (f *Forest) Connected(x, y int) bool {
	rx, err := f.Find(x)
	if err != nil {
		return false
	}
	ry, err := f.Find(y)
	if err != nil {
		return false
	}

	return rx == ry
}

// Roots returns the root of every element without compressing any path.
func (f *Forest) Roots() []int {
	out := make([]int, len(f.parent))
	for x := range f.parent {
		out[x], _ = f.walk(x)
	}

	return out
}

// Sets returns every group with members ascending, groups ordered by their
// smallest member.
func (f *Forest) Sets() [][]int {
	index := make(map[int]int, f.count)
	out := make([][]int, 0, f.count)
	for x := range f.parent {
		r, _ := f.Find(x)
		i, ok := index[r]
		if !ok {
			i = len(out)
			index[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}

// snapshot copies the forest state.
func (f *Forest) snapshot(op Op, path []int, root int) Snapshot {
	return Snapshot{
		Parent: slices.Clone(f.parent),
		Rank:   slices.Clone(f.rank),
		Op:     op,
		Path:   slices.Clone(path),
		Root:   root,
	}
}
