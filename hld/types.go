package hld

import (
	"errors"

	"github.com/katalvlaran/stepviz/trace"
)

var (
	// ErrBadSize indicates a tree with fewer than one node.
	ErrBadSize = errors.New("hld: tree needs at least one node")

	// ErrBadRoot indicates a root outside [0, n).
	ErrBadRoot = errors.New("hld: root out of range")

	// ErrNotTree indicates edges that do not form a single tree.
	ErrNotTree = errors.New("hld: edges do not form a tree")
)

// Pass names the part of the decomposition a Snapshot belongs to.
type Pass int

const (
	PassSizes  Pass = 1 // parent, depth and subtree sizes
	PassChains Pass = 2 // heavy children, chains and positions
)

// Snapshot is the observable state at one step. Unset entries are -1
// (Size: 0).
type Snapshot struct {
	Pass    Pass
	Current int
	Parent  []int
	Depth   []int
	Size    []int
	Heavy   []int
	Head    []int
	Chain   []int
	Pos     []int
}

// Result is carried by the EventDone step.
type Result struct {
	Root    int
	Parent  []int // -1 for the root
	Depth   []int
	Size    []int
	Heavy   []int   // heavy child, -1 for leaves
	Head    []int   // top node of the chain holding v
	Chain   []int   // chain id of v, in layout order
	Pos     []int   // layout position; a chain is contiguous, head first
	Chains  [][]int // nodes per chain, head first
	Outcome trace.Outcome
}

// Status implements trace.Outcomer.
func (r Result) Status() trace.Outcome { return r.Outcome }

// Options configures Decompose.
type Options struct {
	Recorder trace.Recorder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions publishes nothing.
func DefaultOptions() Options {
	return Options{Recorder: trace.Discard}
}

// WithRecorder sends steps to rec.
func WithRecorder(rec trace.Recorder) Option {
	return func(o *Options) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}
