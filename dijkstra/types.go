package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// Inf is the distance of a node that has not been reached.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not built with core.WithWeighted().
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates a source or target outside [0, n).
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures Dijkstra.
//
// Target           – node whose settlement ends the run early; -1 explores everything.
// MaxDistance      – entries farther than this are never settled. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this value are impassable. Must be > 0.
type Options struct {
	Target           int
	MaxDistance      int64
	InfEdgeThreshold int64
	Recorder         trace.Recorder
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns no target, no distance cap, no impassable edges and
// a recorder that drops every step.
func DefaultOptions() Options {
	return Options{
		Target:           -1,
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
		Recorder:         trace.Discard,
	}
}

// WithTarget stops the search once target is settled.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithMaxDistance caps the explored distance.
func WithMaxDistance(maxDist int64) Option {
	return func(o *Options) {
		o.MaxDistance = maxDist
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithRecorder sends steps to rec.
func WithRecorder(rec trace.Recorder) Option {
	return func(o *Options) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}

// Entry is one frontier item as seen in a Snapshot.
type Entry struct {
	Node int
	Dist int64
}

// Snapshot is the observable state at one step.
type Snapshot struct {
	Dist     []int64    // best known distance per node, Inf if unreached
	Prev     []int      // predecessor per node, -1 if none
	Settled  []bool     // finalized nodes
	Frontier []Entry    // heap contents in pop order, stale entries included
	Current  int        // node being settled, -1 before the first pop
	Edge     *core.Edge // edge under relaxation, nil otherwise
}

// Result is carried by the EventDone step.
type Result struct {
	Source  int
	Target  int     // -1 when no target was requested
	Dist    []int64 // Inf for nodes not reached
	Prev    []int   // -1 for the source and unreached nodes
	Order   []int   // settle order
	Path    []int   // source..target, nil without a reachable target
	Cost    int64   // Dist[Target], Inf when unreachable or without target
	Outcome trace.Outcome
}

// Status implements trace.Outcomer.
func (r Result) Status() trace.Outcome { return r.Outcome }

// PathTo rebuilds the path source..v from Prev. It returns nil when v was not reached.
func (r Result) PathTo(v int) []int {
	if v < 0 || v >= len(r.Dist) || r.Dist[v] == Inf {
		return nil
	}
	var rev []int
	for u := v; u != -1; u = r.Prev[u] {
		rev = append(rev, u)
	}
	out := make([]int, len(rev))
	for i, u := range rev {
		out[len(rev)-1-i] = u
	}

	return out
}
