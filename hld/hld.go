package hld

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// Decompose builds an undirected tree from edges and decomposes it from root.
func Decompose(n int, edges [][2]int, root int, opts ...Option) (Result, error) {
	if n < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return Result{}, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1], 0); err != nil {
			return Result{}, fmt.Errorf("hld: %w", err)
		}
	}

	return DecomposeGraph(g, root, opts...)
}

// DecomposeGraph decomposes an undirected tree graph from root.
//
// Steps:
//  1. Check the shape: n-1 undirected edges, every node reachable from root.
//  2. Pass 1: explicit-stack pre-order for parent and depth, then sizes in
//     reverse pre-order.
//  3. Pick the heavy child of every inner node.
//  4. Pass 2: pop chain nodes from a stack, pushing light children below the
//     heavy child so each chain is laid out contiguously.
func DecomposeGraph(g *core.Graph, root int, opts ...Option) (Result, error) {
	if g == nil || g.N() < 1 {
		return Result{}, ErrBadSize
	}
	n := g.N()
	if root < 0 || root >= n {
		return Result{}, fmt.Errorf("%w: %d with n=%d", ErrBadRoot, root, n)
	}
	if g.Directed() || g.EdgeCount() != n-1 {
		return Result{}, fmt.Errorf("%w: %d edges for %d nodes", ErrNotTree, g.EdgeCount(), n)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := newDecomposer(g, root, trace.NewEmitter(cfg.Recorder))
	if !d.sizes() {
		if d.em.Stopped() {
			return d.result(trace.OutcomeCancelled), nil
		}

		return Result{}, fmt.Errorf("%w: not every node is reachable from %d", ErrNotTree, root)
	}
	if !d.heavyChildren() || !d.layout() {
		return d.result(trace.OutcomeCancelled), nil
	}

	res := d.result(trace.OutcomeSuccess)
	d.em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "%d chains", len(res.Chains))

	return res, nil
}

type decomposer struct {
	g      *core.Graph
	root   int
	pass   Pass
	parent []int
	depth  []int
	size   []int
	heavy  []int
	head   []int
	chain  []int
	pos    []int
	chains [][]int
	pre    []int // pre-order from pass 1
	em     *trace.Emitter
}

func newDecomposer(g *core.Graph, root int, em *trace.Emitter) *decomposer {
	n := g.N()
	fill := func(v int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = v
		}

		return s
	}

	return &decomposer{
		g:      g,
		root:   root,
		parent: fill(-1),
		depth:  fill(-1),
		size:   make([]int, n),
		heavy:  fill(-1),
		head:   fill(-1),
		chain:  fill(-1),
		pos:    fill(-1),
		em:     em,
	}
}

// children returns the neighbours of v other than its parent, in adjacency order.
func (d *decomposer) children(v int) []int {
	ids := d.g.NeighborIDs(v)
	out := ids[:0]
	for _, u := range ids {
		if u != d.parent[v] {
			out = append(out, u)
		}
	}

	return out
}

// sizes runs pass 1. It returns false when cancelled or when the walk meets
// a node twice, which with n-1 edges means some node is unreachable.
func (d *decomposer) sizes() bool {
	d.pass = PassSizes
	if !d.em.Emitf(trace.EventInit, trace.DelayVisit, d.snapshot(d.root), []int{d.root},
		"root %d", d.root) {
		return false
	}

	d.depth[d.root] = 0
	stack := []int{d.root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d.pre = append(d.pre, v)
		if !d.em.Emitf(trace.EventVisit, trace.DelayVisit, d.snapshot(v), []int{v},
			"visit %d at depth %d", v, d.depth[v]) {
			return false
		}
		kids := d.children(v)
		// reverse push keeps adjacency order on pop
		for i := len(kids) - 1; i >= 0; i-- {
			c := kids[i]
			if d.depth[c] >= 0 {
				return false
			}
			d.parent[c] = v
			d.depth[c] = d.depth[v] + 1
			stack = append(stack, c)
		}
	}

	for i := len(d.pre) - 1; i >= 0; i-- {
		v := d.pre[i]
		d.size[v]++
		if p := d.parent[v]; p >= 0 {
			d.size[p] += d.size[v]
		}
		if !d.em.Emitf(trace.EventUpdate, trace.DelayUpdate, d.snapshot(v), []int{v},
			"size[%d] = %d", v, d.size[v]) {
			return false
		}
	}

	return true
}

// heavyChildren marks, for every inner node, the child with the strictly
// largest subtree.
func (d *decomposer) heavyChildren() bool {
	d.pass = PassChains
	for _, v := range d.pre {
		best := 0
		for _, c := range d.children(v) {
			if !d.em.Emitf(trace.EventCompare, trace.DelayCompare, d.snapshot(v), []int{v, c},
				"size[%d]=%d vs best %d", c, d.size[c], best) {
				return false
			}
			if d.size[c] > best {
				best = d.size[c]
				d.heavy[v] = c
			}
		}
		if h := d.heavy[v]; h >= 0 {
			if !d.em.Emitf(trace.EventUpdate, trace.DelayUpdate, d.snapshot(v), []int{v, h},
				"heavy edge %d-%d", v, h) {
				return false
			}
		}
	}

	return true
}

// layout assigns heads, chain ids and contiguous positions.
func (d *decomposer) layout() bool {
	next := 0
	stack := []int{d.root}
	d.head[d.root] = d.root
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if d.head[v] == v {
			d.chain[v] = len(d.chains)
			d.chains = append(d.chains, nil)
			if !d.em.Emitf(trace.EventFound, trace.DelayFound, d.snapshot(v), []int{v},
				"chain %d starts at %d", d.chain[v], v) {
				return false
			}
		} else {
			d.chain[v] = d.chain[d.parent[v]]
		}
		d.pos[v] = next
		next++
		d.chains[d.chain[v]] = append(d.chains[d.chain[v]], v)
		if !d.em.Emitf(trace.EventVisit, trace.DelayVisit, d.snapshot(v), []int{v},
			"pos[%d] = %d on chain %d", v, d.pos[v], d.chain[v]) {
			return false
		}

		kids := d.children(v)
		for i := len(kids) - 1; i >= 0; i-- {
			if c := kids[i]; c != d.heavy[v] {
				d.head[c] = c
				stack = append(stack, c)
			}
		}
		if h := d.heavy[v]; h >= 0 {
			d.head[h] = d.head[v]
			stack = append(stack, h)
		}
	}

	return true
}

func (d *decomposer) snapshot(cur int) Snapshot {
	return Snapshot{
		Pass:    d.pass,
		Current: cur,
		Parent:  slices.Clone(d.parent),
		Depth:   slices.Clone(d.depth),
		Size:    slices.Clone(d.size),
		Heavy:   slices.Clone(d.heavy),
		Head:    slices.Clone(d.head),
		Chain:   slices.Clone(d.chain),
		Pos:     slices.Clone(d.pos),
	}
}

func (d *decomposer) result(outcome trace.Outcome) Result {
	chains := make([][]int, len(d.chains))
	for i, c := range d.chains {
		chains[i] = slices.Clone(c)
	}

	return Result{
		Root:    d.root,
		Parent:  slices.Clone(d.parent),
		Depth:   slices.Clone(d.depth),
		Size:    slices.Clone(d.size),
		Heavy:   slices.Clone(d.heavy),
		Head:    slices.Clone(d.head),
		Chain:   slices.Clone(d.chain),
		Pos:     slices.Clone(d.pos),
		Chains:  chains,
		Outcome: outcome,
	}
}
