package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is outside [0, n).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Recorder receives the published steps.
	Recorder trace.Recorder

	err error
}

// DefaultOptions returns no depth limit and a discarding recorder.
func DefaultOptions() BFSOptions {
	return BFSOptions{Recorder: trace.Discard}
}

// WithMaxDepth limits exploration depth. Negative values are an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithRecorder sends steps to rec.
func WithRecorder(rec trace.Recorder) Option {
	return func(o *BFSOptions) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}

// Snapshot is the observable state at one step.
type Snapshot struct {
	Queue   []int      // FIFO contents, head first
	Depth   []int      // hop distance, -1 if undiscovered
	Current int        // node being expanded, -1 if none
	Edge    *core.Edge // edge being examined
	Layers  [][]int    // discovered nodes grouped by depth
}

// BFSResult holds the outcome of a breadth-first search.
type BFSResult struct {
	Order   []int   // dequeue order
	Depth   []int   // hop distance from start, -1 if unreachable
	Parent  []int   // BFS tree parent, -1 for start and unreachable nodes
	Layers  [][]int // Layers[d] lists the nodes at depth d in discovery order
	Outcome trace.Outcome
}

// Status implements trace.Outcomer.
func (r BFSResult) Status() trace.Outcome { return r.Outcome }

// PathTo returns the hop-minimal path from the start to v, or nil if v was not reached.
func (r BFSResult) PathTo(v int) []int {
	if v < 0 || v >= len(r.Depth) || r.Depth[v] < 0 {
		return nil
	}
	path := make([]int, r.Depth[v]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = v
		v = r.Parent[v]
	}

	return path
}
