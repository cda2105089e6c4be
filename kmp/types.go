package kmp

import "github.com/katalvlaran/stepviz/trace"

// Phase names the part of the algorithm a Snapshot belongs to.
type Phase string

const (
	PhaseTable  Phase = "table"
	PhaseSearch Phase = "search"
)

// Snapshot is the observable state at one step.
type Snapshot struct {
	Phase       Phase
	LPS         []int // table so far; entries not yet computed are -1
	I           int   // main index (pattern in PhaseTable, text in PhaseSearch)
	J           int   // running match length / pattern index
	Matches     []int // match start positions found so far
	Comparisons int   // character comparisons so far
}

// Result is carried by the EventDone step.
type Result struct {
	LPS         []int
	Matches     []int // starting rune offsets, ascending
	Comparisons int   // character comparisons across both phases
	Outcome     trace.Outcome
}

// Status implements trace.Outcomer.
func (r Result) Status() trace.Outcome { return r.Outcome }

// Options configures Search.
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
