package playback_test

import (
	"context"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/trace"
)

type countResult struct {
	Reached int
	Outcome trace.Outcome
}

func (r countResult) Status() trace.Outcome { return r.Outcome }

// counter publishes n visit steps and a done step. It stops as soon as
// Publish returns false and reports how far it got.
func counter(n int, reached *int) iter.Seq[trace.Step] {
	return trace.Steps(func(rec trace.Recorder) {
		em := trace.NewEmitter(rec)
		res := countResult{Outcome: trace.OutcomeCancelled}
		for i := 0; i < n; i++ {
			if !em.Emit(trace.EventVisit, trace.DelayVisit, "tick", i, i) {
				if reached != nil {
					*reached = res.Reached
				}
				return
			}
			res.Reached = i + 1
		}
		res.Outcome = trace.OutcomeSuccess
		em.Emit(trace.EventDone, trace.DelayDone, "done", res)
		if reached != nil {
			*reached = res.Reached
		}
	})
}

// delays records every requested suspension without sleeping.
type delays struct {
	mu  sync.Mutex
	got []time.Duration
}

func (d *delays) sleep(ctx context.Context, dur time.Duration) error {
	d.mu.Lock()
	d.got = append(d.got, dur)
	d.mu.Unlock()

	return ctx.Err()
}

func TestPlay_CompletesAndScalesDelay(t *testing.T) {
	rec := &delays{}
	s := playback.NewSession(playback.WithSleeper(rec.sleep), playback.WithSpeed(2))

	rep, err := s.Play(context.Background(), "count", counter(3, nil))
	require.NoError(t, err)
	assert.True(t, rep.Completed)
	assert.Equal(t, trace.OutcomeSuccess, rep.Outcome)
	assert.Equal(t, 4, rep.Steps)
	assert.Equal(t, trace.EventDone, rep.Last.Event)

	want := []time.Duration{trace.DelayVisit / 2, trace.DelayVisit / 2, trace.DelayVisit / 2, 0}
	assert.Equal(t, want, rec.got)

	last, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, 3, last.Seq)

	_, active := s.Active()
	assert.False(t, active)
}

func TestPlay_SpeedReadAtEachSuspension(t *testing.T) {
	var s *playback.Session
	var got []time.Duration
	s = playback.NewSession(playback.WithSleeper(func(_ context.Context, d time.Duration) error {
		got = append(got, d)
		// speed up after the first pause
		require.NoError(t, s.SetSpeed(3))

		return nil
	}))

	_, err := s.Play(context.Background(), "count", counter(2, nil))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, trace.DelayVisit, got[0])
	assert.Equal(t, trace.DelayVisit/3, got[1])
}

func TestSetSpeed_Rejects(t *testing.T) {
	s := playback.NewSession()
	for _, v := range []float64{0, -1} {
		assert.ErrorIs(t, s.SetSpeed(v), playback.ErrBadSpeed)
	}
	assert.Equal(t, playback.DefaultSpeed, s.Speed())
	require.NoError(t, s.SetSpeed(0.5))
	assert.Equal(t, 0.5, s.Speed())
}

func TestPlay_NilSteps(t *testing.T) {
	s := playback.NewSession()
	_, err := s.Play(context.Background(), "x", nil)
	assert.ErrorIs(t, err, playback.ErrNilSteps)
}

func TestPlay_CancelObservesPrefix(t *testing.T) {
	full := trace.Collect(counter(10, nil))

	var s *playback.Session
	var seen []trace.Step
	pauses := 0
	s = playback.NewSession(
		playback.WithHooks(playback.StepFunc(func(st trace.Step) { seen = append(seen, st) })),
		playback.WithSleeper(func(ctx context.Context, _ time.Duration) error {
			pauses++
			if pauses == 4 {
				s.Cancel()
			}

			return ctx.Err()
		}),
	)

	reached := -1
	rep, err := s.Play(context.Background(), "count", counter(10, &reached))
	require.NoError(t, err)
	assert.False(t, rep.Completed)
	assert.Equal(t, trace.OutcomeCancelled, rep.Outcome)
	assert.Equal(t, 4, rep.Steps)
	assert.Equal(t, 3, reached, "core unwinds at the step the consumer stopped on")
	assert.Equal(t, full[:4], seen)
}

func TestPlay_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := playback.NewSession(playback.WithSleeper(func(c context.Context, _ time.Duration) error {
		cancel()

		return c.Err()
	}))

	rep, err := s.Play(ctx, "count", counter(5, nil))
	require.NoError(t, err)
	assert.False(t, rep.Completed)
	assert.Equal(t, 1, rep.Steps)
}

func TestPlay_SpeedDoesNotChangeSteps(t *testing.T) {
	collect := func(speed float64) []trace.Step {
		var out []trace.Step
		s := playback.NewSession(
			playback.WithSpeed(speed),
			playback.WithSleeper(func(context.Context, time.Duration) error { return nil }),
			playback.WithHooks(playback.StepFunc(func(st trace.Step) { out = append(out, st) })),
		)
		_, err := s.Play(context.Background(), "count", counter(6, nil))
		require.NoError(t, err)

		return out
	}
	assert.Equal(t, collect(1), collect(1000))
}

// blockingSession returns a session whose sleeper parks until the run context
// is cancelled, and a channel closed when the first pause begins.
func blockingSession(opts ...playback.Option) (*playback.Session, <-chan struct{}) {
	started := make(chan struct{})
	var once sync.Once
	opts = append(opts, playback.WithSleeper(func(ctx context.Context, d time.Duration) error {
		if d == 0 {
			return ctx.Err()
		}
		once.Do(func() { close(started) })
		<-ctx.Done()

		return ctx.Err()
	}))

	return playback.NewSession(opts...), started
}

func TestPlay_RejectsConcurrentRun(t *testing.T) {
	s, started := blockingSession()

	done := make(chan playback.Report)
	go func() {
		rep, _ := s.Play(context.Background(), "first", counter(5, nil))
		done <- rep
	}()
	<-started

	id, active := s.Active()
	require.True(t, active)

	_, err := s.Play(context.Background(), "second", counter(1, nil))
	assert.ErrorIs(t, err, playback.ErrRunActive)

	s.Cancel()
	rep := <-done
	assert.Equal(t, id, rep.RunID)
	assert.False(t, rep.Completed)
}

func TestReplace_CancelsThenStarts(t *testing.T) {
	var mu sync.Mutex
	var order []string
	hooks := recordingHooks{record: func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}}
	s, started := blockingSession(playback.WithHooks(hooks))

	first := make(chan playback.Report)
	go func() {
		rep, _ := s.Play(context.Background(), "first", counter(5, nil))
		first <- rep
	}()
	<-started

	// The replacement is zero-delay so it never blocks.
	zero := trace.Steps(func(rec trace.Recorder) {
		em := trace.NewEmitter(rec)
		em.Emit(trace.EventDone, 0, "done", countResult{})
	})

	repCh := make(chan playback.Report)
	go func() {
		rep, err := s.Replace(context.Background(), "second", zero)
		assert.NoError(t, err)
		repCh <- rep
	}()

	r1 := <-first
	r2 := <-repCh
	assert.False(t, r1.Completed)
	assert.True(t, r2.Completed)
	assert.NotEqual(t, r1.RunID, r2.RunID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"start:first", "end:first", "start:second", "end:second"}, order)
}

type recordingHooks struct {
	playback.NoopHooks
	record func(string)
}

func (h recordingHooks) OnRunStart(_ context.Context, _ uuid.UUID, algorithm string) {
	h.record("start:" + algorithm)
}

func (h recordingHooks) OnRunEnd(_ context.Context, rep playback.Report) {
	h.record("end:" + rep.Algorithm)
}
