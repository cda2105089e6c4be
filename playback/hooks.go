package playback

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/trace"
)

// Hooks receives run lifecycle and step events from a Session.
// Implementations must be fast; they run on the playback goroutine.
type Hooks interface {
	// OnRunStart is called once a run has been admitted.
	OnRunStart(ctx context.Context, runID uuid.UUID, algorithm string)

	// OnStep is called after a step became the latest snapshot and before the
	// session suspends for delay.
	OnStep(ctx context.Context, runID uuid.UUID, algorithm string, step trace.Step, delay time.Duration)

	// OnRunEnd is called once per admitted run, completed or cancelled.
	OnRunEnd(ctx context.Context, report Report)
}

// NoopHooks ignores every event.
type NoopHooks struct{}

func (NoopHooks) OnRunStart(context.Context, uuid.UUID, string) {}

func (NoopHooks) OnStep(context.Context, uuid.UUID, string, trace.Step, time.Duration) {}

func (NoopHooks) OnRunEnd(context.Context, Report) {}

// StepFunc adapts a per-step callback to Hooks, typically a renderer that only
// cares about the latest snapshot.
type StepFunc func(step trace.Step)

func (StepFunc) OnRunStart(context.Context, uuid.UUID, string) {}

func (f StepFunc) OnStep(_ context.Context, _ uuid.UUID, _ string, step trace.Step, _ time.Duration) {
	f(step)
}

func (StepFunc) OnRunEnd(context.Context, Report) {}

// MultiHooks fans every event out to each member in order.
type MultiHooks []Hooks

func (m MultiHooks) OnRunStart(ctx context.Context, runID uuid.UUID, algorithm string) {
	for _, h := range m {
		h.OnRunStart(ctx, runID, algorithm)
	}
}

func (m MultiHooks) OnStep(ctx context.Context, runID uuid.UUID, algorithm string, step trace.Step, delay time.Duration) {
	for _, h := range m {
		h.OnStep(ctx, runID, algorithm, step, delay)
	}
}

func (m MultiHooks) OnRunEnd(ctx context.Context, report Report) {
	for _, h := range m {
		h.OnRunEnd(ctx, report)
	}
}
