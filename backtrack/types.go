package backtrack

import (
	"errors"

	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors.
var (
	// ErrBadSize indicates an N-Queens board size below 1.
	ErrBadSize = errors.New("backtrack: board size must be at least 1")

	// ErrBadCell indicates a Sudoku cell outside 0..9.
	ErrBadCell = errors.New("backtrack: sudoku cell must be 0..9")
)

// Options configures every search in this package.
type Options struct {
	// MaxSolutions stops the search after that many solutions; 0 means all.
	MaxSolutions int
	Recorder     trace.Recorder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions finds every solution and publishes nothing.
func DefaultOptions() Options {
	return Options{Recorder: trace.Discard}
}

// WithMaxSolutions caps the number of reported solutions. k <= 0 means all.
func WithMaxSolutions(k int) Option {
	return func(o *Options) {
		if k < 0 {
			k = 0
		}
		o.MaxSolutions = k
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

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// search is the control state shared by the three solvers.
type search struct {
	em    *trace.Emitter
	max   int
	found int
}

// stop reports whether the recorder stopped or the solution cap was reached.
func (s *search) stop() bool {
	return s.em.Stopped() || (s.max > 0 && s.found >= s.max)
}

// outcome classifies a finished search.
func (s *search) outcome() trace.Outcome {
	switch {
	case s.em.Stopped():
		return trace.OutcomeCancelled
	case s.found == 0:
		return trace.OutcomeNoSolution
	default:
		return trace.OutcomeSuccess
	}
}
