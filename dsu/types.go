package dsu

import (
	"errors"

	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors.
var (
	// ErrBadSize indicates a forest size below 1.
	ErrBadSize = errors.New("dsu: size must be at least 1")

	// ErrOutOfRange indicates an element outside [0, n).
	ErrOutOfRange = errors.New("dsu: element out of range")

	// ErrBadOp indicates an operation kind other than OpFind or OpUnion.
	ErrBadOp = errors.New("dsu: unknown operation")
)

// OpKind selects the operation applied by Run.
type OpKind string

const (
	OpFind  OpKind = "find"
	OpUnion OpKind = "union"
)

// Op is one scripted operation. Y is ignored for OpFind.
type Op struct {
	Kind OpKind
	X, Y int
}

// Find is shorthand for Op{Kind: OpFind, X: x}.
func Find(x int) Op { return Op{Kind: OpFind, X: x} }

// Union is shorthand for Op{Kind: OpUnion, X: x, Y: y}.
func Union(x, y int) Op { return Op{Kind: OpUnion, X: x, Y: y} }

// Snapshot is the observable forest state at one step.
type Snapshot struct {
	Parent []int // parent pointers; roots point at themselves
	Rank   []int // rank upper bounds
	Op     Op    // operation in progress
	Path   []int // elements walked from the operand to its root (inclusive)
	Root   int   // root found for the current operand, -1 before it is known
}

// Result is carried by the EventDone step of Run.
type Result struct {
	Parent  []int   // final parent pointers
	Rank    []int   // final ranks
	Roots   []int   // root returned by every OpFind, in order
	Merged  []bool  // whether every OpUnion joined two different sets, in order
	Sets    [][]int // final groups, see Forest.Sets
	Outcome trace.Outcome
}

// Status implements trace.Outcomer.
func (r Result) Status() trace.Outcome { return r.Outcome }

// Options configures Run.
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
