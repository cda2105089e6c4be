package dfs

import (
	"errors"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// Visitation colours of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or SCC.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates a start vertex outside [0, n).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrUndirected indicates TopologicalSort was called on an undirected graph.
	ErrUndirected = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS, TopologicalSort and SCC.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the traversals.
type DFSOptions struct {
	// MaxDepth, if non-negative, limits DFS recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, runs DFS from every unvisited vertex in index
	// order, covering disconnected components. Default is false.
	FullTraversal bool

	// Recorder receives the published steps.
	Recorder trace.Recorder
}

// DefaultOptions returns no depth limit, single-source traversal and a
// recorder that drops every step.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		MaxDepth:      -1,
		FullTraversal: false,
		Recorder:      trace.Discard,
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal makes DFS restart from each unvisited vertex.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithRecorder sends steps to rec.
func WithRecorder(rec trace.Recorder) Option {
	return func(o *DFSOptions) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}

// Snapshot is the observable traversal state at one step.
type Snapshot struct {
	Pass      int        // SCC pass (1 or 2); 0 for DFS and TopologicalSort
	Color     []int      // White, Gray or Black per node
	Stack     []int      // recursion stack, bottom first
	Current   int        // node being expanded, -1 if none
	Edge      *core.Edge // edge being examined, nil otherwise
	Order     []int      // post-order so far (finish stack during SCC pass 1)
	Component []int      // SCC id per node, -1 if unassigned; nil outside SCC
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	PreOrder []int  // discovery order
	Order    []int  // finish order (post-order)
	Depth    []int  // edges from the tree root, -1 if not visited
	Parent   []int  // discoverer, -1 for roots and unvisited nodes
	Visited  []bool // reached during the traversal
	Outcome  trace.Outcome
}

// Status implements trace.Outcomer.
func (r DFSResult) Status() trace.Outcome { return r.Outcome }

// TopoResult is the outcome of TopologicalSort.
type TopoResult struct {
	Order   []int // topological order, nil when a cycle was found
	Cycle   []int // closed walk u..v,u of the back edge v→u, nil when acyclic
	Outcome trace.Outcome
}

// Status implements trace.Outcomer.
func (r TopoResult) Status() trace.Outcome { return r.Outcome }

// SCCResult is the outcome of SCC.
type SCCResult struct {
	Components  [][]int // in discovery order, members ascending
	ComponentOf []int   // component index per node
	Finish      []int   // pass-1 finish stack, bottom first
	Outcome     trace.Outcome
}

// Status implements trace.Outcomer.
func (r SCCResult) Status() trace.Outcome { return r.Outcome }
