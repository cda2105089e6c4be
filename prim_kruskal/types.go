package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrBadRoot indicates a Prim root outside [0, n).
var ErrBadRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
//
// Fields:
//
//	Method   – MethodPrim or MethodKruskal.
//	Root     – start vertex for Prim; ignored by Kruskal.
//	Recorder – receives the published steps.
type MSTOptions struct {
	Method   string
	Root     int
	Recorder trace.Recorder
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRecorder sends steps to rec.
func WithRecorder(rec trace.Recorder) Option {
	return func(opts *MSTOptions) {
		if rec != nil {
			opts.Recorder = rec
		}
	}
}

// DefaultOptions selects Kruskal, root 0 and a discarding recorder.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:   MethodKruskal,
		Root:     0,
		Recorder: trace.Discard,
	}
}

// Snapshot is the observable state at one step.
type Snapshot struct {
	Tree      []core.Edge // accepted edges so far
	Total     int64       // their weight
	Candidate *core.Edge  // edge being considered, nil otherwise
	InTree    []bool      // Prim: nodes already in the tree
	Frontier  []core.Edge // Prim: heap contents in pop order
	Remaining []core.Edge // Kruskal: sorted edges not yet considered
	Component []int       // Kruskal: dsu root per node
}

// Result is carried by the EventDone step.
type Result struct {
	Method  string
	Edges   []core.Edge // tree (or forest) edges in acceptance order
	Total   int64
	Outcome trace.Outcome // OutcomeNoSolution when the graph is disconnected
}

// Status implements trace.Outcomer.
func (r Result) Status() trace.Outcome { return r.Outcome }

// Compute selects and runs the MST algorithm based on opts.Method.
func Compute(graph *core.Graph, opts MSTOptions) (Result, error) {
	rec := WithRecorder(opts.Recorder)
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, rec)
	case MethodPrim:
		return Prim(graph, opts.Root, rec)
	default:
		return Result{}, ErrUnknownMethod
	}
}

func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}

	return nil
}
