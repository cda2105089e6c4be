package playback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/stepviz/trace"
)

// Metrics is a Hooks implementation backed by Prometheus collectors.
type Metrics struct {
	steps *prometheus.CounterVec
	runs  *prometheus.CounterVec
	delay prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg when reg is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepviz_steps_published_total",
			Help: "Steps observed by playback sessions, by event",
		}, []string{"algorithm", "event"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepviz_runs_total",
			Help: "Finished playback runs, by outcome",
		}, []string{"algorithm", "outcome"}),
		delay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stepviz_step_delay_seconds",
			Help:    "Speed-scaled suspension per step",
			Buckets: []float64{0, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.steps, m.runs, m.delay)
	}

	return m
}

func (m *Metrics) OnRunStart(context.Context, uuid.UUID, string) {}

func (m *Metrics) OnStep(_ context.Context, _ uuid.UUID, algorithm string, step trace.Step, delay time.Duration) {
	m.steps.WithLabelValues(algorithm, string(step.Event)).Inc()
	m.delay.Observe(delay.Seconds())
}

func (m *Metrics) OnRunEnd(_ context.Context, report Report) {
	m.runs.WithLabelValues(report.Algorithm, report.Outcome.String()).Inc()
}
