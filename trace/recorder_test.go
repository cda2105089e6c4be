package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/trace"
)

// countTo publishes n visit steps and a done step, stopping when asked.
func countTo(n int, rec trace.Recorder) int {
	em := trace.NewEmitter(rec)
	for i := 0; i < n; i++ {
		if !em.Emit(trace.EventVisit, trace.DelayVisit, "tick", i, i) {
			return i
		}
	}
	em.Emit(trace.EventDone, trace.DelayDone, "done", n)

	return n
}

// TestEmitter_Sequence verifies numbering, focus copy and terminal step.
func TestEmitter_Sequence(t *testing.T) {
	tape := &trace.Tape{}
	got := countTo(3, tape)

	assert.Equal(t, 3, got)
	require.Len(t, tape.Steps, 4)
	for i, s := range tape.Steps {
		assert.Equal(t, i, s.Seq)
	}
	assert.Equal(t, []int{1}, tape.Steps[1].Focus)
	last, ok := tape.Last()
	require.True(t, ok)
	assert.Equal(t, trace.EventDone, last.Event)
}

// TestEmitter_StopLatches verifies that a stop request is sticky.
func TestEmitter_StopLatches(t *testing.T) {
	tape := &trace.Tape{Limit: 2}
	got := countTo(10, tape)

	assert.Equal(t, 1, got, "core stops right after the second publish")
	assert.Len(t, tape.Steps, 2)

	em := trace.NewEmitter(trace.RecorderFunc(func(trace.Step) bool { return false }))
	assert.False(t, em.Emit(trace.EventInit, 0, "first", nil))
	assert.True(t, em.Stopped())
	assert.False(t, em.Emit(trace.EventInit, 0, "second", nil))
	assert.Equal(t, 1, em.Count())
}

// TestSteps_PrefixOnBreak verifies that breaking out of the iterator yields a
// strict prefix of the full run.
func TestSteps_PrefixOnBreak(t *testing.T) {
	full := trace.Collect(trace.Steps(func(rec trace.Recorder) { countTo(5, rec) }))
	require.Len(t, full, 6)

	var partial []trace.Step
	for s := range trace.Steps(func(rec trace.Recorder) { countTo(5, rec) }) {
		partial = append(partial, s)
		if len(partial) == 3 {
			break
		}
	}
	assert.Equal(t, full[:3], partial)
}

// TestOutcome_String covers every label.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", trace.OutcomeSuccess.String())
	assert.Equal(t, "no-solution", trace.OutcomeNoSolution.String())
	assert.Equal(t, "cycle-detected", trace.OutcomeCycleDetected.String())
	assert.Equal(t, "cancelled", trace.OutcomeCancelled.String())
	assert.Equal(t, "unknown", trace.Outcome(42).String())
}

// TestDiscard never stops.
func TestDiscard(t *testing.T) {
	assert.Equal(t, 100, countTo(100, trace.Discard))
	assert.Equal(t, 4, countTo(4, nil))
}
