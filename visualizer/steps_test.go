package visualizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stepviz/trace"
)

func TestSteps_PanicsOnCoreError(t *testing.T) {
	seq := steps(func(trace.Recorder) error { return errors.New("boom") })
	assert.PanicsWithValue(t, "visualizer: validated run failed: boom", func() {
		trace.Collect(seq)
	})

	ok := steps(func(rec trace.Recorder) error {
		trace.NewEmitter(rec).Emit(trace.EventDone, trace.DelayDone, "done", nil)
		return nil
	})
	assert.Len(t, trace.Collect(ok), 1)
}
