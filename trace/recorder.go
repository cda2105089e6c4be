package trace

import (
	"fmt"
	"iter"
	"time"
)

// Recorder receives published steps. Publish returns false to ask the
// publishing core to stop.
type Recorder interface {
	Publish(s Step) bool
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(Step) bool

// Publish calls f(s).
func (f RecorderFunc) Publish(s Step) bool { return f(s) }

// Discard drops every step and never stops.
var Discard Recorder = RecorderFunc(func(Step) bool { return true })

// Tape records steps in memory.
// If Limit > 0 the tape asks the core to stop once Limit steps are recorded.
type Tape struct {
	Steps []Step
	Limit int
}

// Publish appends s and reports whether more steps are wanted.
func (t *Tape) Publish(s Step) bool {
	t.Steps = append(t.Steps, s)

	return t.Limit <= 0 || len(t.Steps) < t.Limit
}

// Last returns the most recent step.
func (t *Tape) Last() (Step, bool) {
	if len(t.Steps) == 0 {
		return Step{}, false
	}

	return t.Steps[len(t.Steps)-1], true
}

// Events lists the Event of every recorded step.
func (t *Tape) Events() []Event {
	out := make([]Event, len(t.Steps))
	for i, s := range t.Steps {
		out[i] = s.Event
	}

	return out
}

// Emitter numbers steps and latches the stop request of its Recorder.
// Cores own exactly one Emitter per run.
type Emitter struct {
	rec     Recorder
	seq     int
	stopped bool
}

// NewEmitter wraps rec; a nil rec behaves like Discard.
func NewEmitter(rec Recorder) *Emitter {
	if rec == nil {
		rec = Discard
	}

	return &Emitter{rec: rec}
}

// Emit publishes one step and reports whether the core may continue.
// After the first false every call is a no-op returning false.
func (e *Emitter) Emit(ev Event, delay time.Duration, msg string, state any, focus ...int) bool {
	if e.stopped {
		return false
	}
	s := Step{
		Seq:     e.seq,
		Event:   ev,
		Delay:   delay,
		Message: msg,
		State:   state,
	}
	if len(focus) > 0 {
		s.Focus = append([]int(nil), focus...)
	}
	e.seq++
	if !e.rec.Publish(s) {
		e.stopped = true
	}

	return !e.stopped
}

// Emitf is Emit with a formatted message.
func (e *Emitter) Emitf(ev Event, delay time.Duration, state any, focus []int, format string, args ...any) bool {
	if e.stopped {
		return false
	}

	return e.Emit(ev, delay, fmt.Sprintf(format, args...), state, focus...)
}

// Stopped reports whether the Recorder asked to stop.
func (e *Emitter) Stopped() bool { return e.stopped }

// Count returns the number of published steps.
func (e *Emitter) Count() int { return e.seq }

// Steps turns a core invocation into a generator. run receives a Recorder
// bound to the consumer's range loop; breaking out of the loop makes every
// later Publish return false so the core unwinds.
func Steps(run func(Recorder)) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		done := false
		run(RecorderFunc(func(s Step) bool {
			if done {
				return false
			}
			if !yield(s) {
				done = true
			}

			return !done
		}))
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Step]) []Step {
	var out []Step
	for s := range seq {
		out = append(out, s)
	}

	return out
}
