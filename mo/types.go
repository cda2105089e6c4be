package mo

import (
	"errors"

	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors.
var (
	// ErrEmpty indicates an empty value array.
	ErrEmpty = errors.New("mo: values must not be empty")

	// ErrBadQuery indicates a query with L > R or an endpoint outside [0, n).
	ErrBadQuery = errors.New("mo: query out of range")
)

// Query is an inclusive index range [L, R].
type Query struct {
	L, R int
}

// Aggregate is the answer to one query.
type Aggregate struct {
	Sum      int
	Distinct int
}

// Snapshot is the observable state at one step.
type Snapshot struct {
	Block    int
	Order    []int       // query indices in processing order
	Query    int         // original index of the query being answered, -1 if none
	L, R     int         // current window; empty when R < L
	Sum      int
	Distinct int
	Answers  []Aggregate // indexed by original query, zero until answered
	Answered []bool
	Moves    int // single-element add/remove operations so far
}

// Result is carried by the EventDone step.
type Result struct {
	Block   int
	Order   []int
	Answers []Aggregate // in original query order
	Moves   int
	Outcome trace.Outcome
}

// Status implements trace.Outcomer.
func (r Result) Status() trace.Outcome { return r.Outcome }

// Options configures Answer.
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
