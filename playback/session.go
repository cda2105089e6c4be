package playback

import (
	"context"
	"fmt"
	"iter"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/trace"
)

// run is the in-flight state of one admitted Play call.
type run struct {
	id        uuid.UUID
	cancel    context.CancelFunc
	cancelled atomic.Bool
	done      chan struct{}
}

// stop raises the cancellation flag and wakes a pending suspension.
func (r *run) stop() {
	r.cancelled.Store(true)
	r.cancel()
}

// Session paces one visualizer instance. The zero value is not usable; call NewSession.
type Session struct {
	opts  Options
	speed atomic.Uint64 // math.Float64bits of the multiplier

	mu        sync.Mutex
	current   *run
	latest    trace.Step
	hasLatest bool
}

// NewSession creates a Session with the given options.
func NewSession(opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{opts: o}
	s.speed.Store(math.Float64bits(o.Speed))

	return s
}

// Speed returns the current multiplier.
func (s *Session) Speed() float64 {
	return math.Float64frombits(s.speed.Load())
}

// SetSpeed changes the multiplier. The next suspension uses the new value.
func (s *Session) SetSpeed(speed float64) error {
	if !validSpeed(speed) {
		return fmt.Errorf("%w: got %v", ErrBadSpeed, speed)
	}
	s.speed.Store(math.Float64bits(speed))

	return nil
}

// Active returns the identity of the in-flight run, if any.
func (s *Session) Active() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return uuid.Nil, false
	}

	return s.current.id, true
}

// Latest returns the most recently published snapshot.
func (s *Session) Latest() (trace.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest, s.hasLatest
}

// Cancel asks the active run to stop at its next suspension point.
// It does not wait; use Wait or Replace for that. No-op when idle.
func (s *Session) Cancel() {
	s.mu.Lock()
	cur := s.current
	s.mu.Unlock()
	if cur != nil {
		cur.stop()
	}
}

// Wait blocks until the active run (if any) has terminated or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	cur := s.current
	s.mu.Unlock()
	if cur == nil {
		return nil
	}
	select {
	case <-cur.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Replace cancels the active run, awaits its termination, then plays steps.
func (s *Session) Replace(ctx context.Context, algorithm string, steps iter.Seq[trace.Step]) (Report, error) {
	s.Cancel()
	if err := s.Wait(ctx); err != nil {
		return Report{}, err
	}

	return s.Play(ctx, algorithm, steps)
}

// Play runs steps to completion or cancellation, blocking the caller.
//
// Loop per step:
//  1. Store the step as the latest snapshot and notify hooks.
//  2. Check the cancellation flag; stop pulling if set.
//  3. Suspend for Delay/Speed, reading Speed now.
//  4. Check the cancellation flag again.
//
// Returns ErrRunActive without side effects when another run is in flight.
func (s *Session) Play(ctx context.Context, algorithm string, steps iter.Seq[trace.Step]) (Report, error) {
	if steps == nil {
		return Report{}, ErrNilSteps
	}
	r, runCtx, err := s.begin(ctx)
	if err != nil {
		return Report{}, err
	}

	rep := Report{RunID: r.id, Algorithm: algorithm, Outcome: trace.OutcomeCancelled}
	start := time.Now()
	log := s.opts.Logger.With("run", r.id.String(), "algorithm", algorithm)
	log.Debug("run started", "speed", s.Speed())
	s.opts.Hooks.OnRunStart(runCtx, r.id, algorithm)

	defer func() {
		rep.Elapsed = time.Since(start)
		s.opts.Hooks.OnRunEnd(runCtx, rep)
		if rep.Completed {
			log.Info("run finished", "steps", rep.Steps, "outcome", rep.Outcome, "elapsed", rep.Elapsed.Round(time.Millisecond))
		} else {
			log.Info("run cancelled", "steps", rep.Steps, "elapsed", rep.Elapsed.Round(time.Millisecond))
		}
		r.cancel()
		s.end(r)
	}()

	for step := range steps {
		s.store(step)
		rep.Steps++
		rep.Last = step
		if step.Event == trace.EventDone {
			rep.Completed = true
			if res, ok := step.State.(trace.Outcomer); ok {
				rep.Outcome = res.Status()
			} else {
				rep.Outcome = trace.OutcomeSuccess
			}
		}

		delay := Scale(step.Delay, s.Speed())
		s.opts.Hooks.OnStep(runCtx, r.id, algorithm, step, delay)

		if r.cancelled.Load() || runCtx.Err() != nil {
			break
		}
		if err = s.opts.Sleep(runCtx, delay); err != nil {
			break
		}
		if r.cancelled.Load() {
			break
		}
	}

	return rep, nil
}

// begin admits a new run or reports ErrRunActive.
func (s *Session) begin(ctx context.Context) (*run, context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrRunActive, s.current.id)
	}
	runCtx, cancel := context.WithCancel(ctx)
	r := &run{id: uuid.New(), cancel: cancel, done: make(chan struct{})}
	s.current = r
	s.hasLatest = false

	return r, runCtx, nil
}

// end releases the active slot and signals waiters.
func (s *Session) end(r *run) {
	s.mu.Lock()
	if s.current == r {
		s.current = nil
	}
	s.mu.Unlock()
	close(r.done)
}

func (s *Session) store(step trace.Step) {
	s.mu.Lock()
	s.latest = step
	s.hasLatest = true
	s.mu.Unlock()
}
