package playback

import (
	"context"
	"errors"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors returned by Session.
var (
	// ErrRunActive indicates that Play was called while another run is in flight.
	ErrRunActive = errors.New("playback: a run is already active")

	// ErrBadSpeed indicates a speed multiplier that is not a finite value > 0.
	ErrBadSpeed = errors.New("playback: speed must be a finite value > 0")

	// ErrNilSteps indicates that Play received a nil step sequence.
	ErrNilSteps = errors.New("playback: step sequence is nil")
)

// DefaultSpeed is the multiplier of a fresh Session.
const DefaultSpeed = 1.0

// Sleeper suspends for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Report summarizes a finished (completed or cancelled) run.
type Report struct {
	RunID     uuid.UUID     // identity of the run
	Algorithm string        // visualizer name passed to Play
	Steps     int           // number of steps observed
	Completed bool          // true when the EventDone step was observed
	Outcome   trace.Outcome // outcome of the Result, or OutcomeCancelled
	Last      trace.Step    // last observed step
	Elapsed   time.Duration // wall-clock duration
}

// Options configures a Session.
type Options struct {
	Speed  float64     // initial speed multiplier (> 0)
	Logger *log.Logger // run lifecycle logging
	Hooks  Hooks       // step and run events
	Sleep  Sleeper     // suspension primitive
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns speed 1, a silent logger, no-op hooks and a timer sleeper.
func DefaultOptions() Options {
	return Options{
		Speed:  DefaultSpeed,
		Logger: log.New(io.Discard),
		Hooks:  NoopHooks{},
		Sleep:  sleepContext,
	}
}

// WithSpeed sets the initial speed multiplier. Invalid values are ignored.
func WithSpeed(speed float64) Option {
	return func(o *Options) {
		if validSpeed(speed) {
			o.Speed = speed
		}
	}
}

// WithLogger installs a logger. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHooks installs event hooks. A nil value keeps the no-op default.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		if h != nil {
			o.Hooks = h
		}
	}
}

// WithSleeper replaces the suspension primitive.
func WithSleeper(fn Sleeper) Option {
	return func(o *Options) {
		if fn != nil {
			o.Sleep = fn
		}
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func validSpeed(speed float64) bool {
	return speed > 0 && !math.IsInf(speed, 0) && !math.IsNaN(speed)
}

// Scale converts a base delay into wall-clock time for the given speed.
func Scale(base time.Duration, speed float64) time.Duration {
	if base <= 0 || !validSpeed(speed) {
		return 0
	}

	return time.Duration(float64(base) / speed)
}
