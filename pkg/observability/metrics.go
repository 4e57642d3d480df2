package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/turing/pkg/machine"
)

// Metrics exposes engine activity as Prometheus collectors. It plugs into
// the engine through lifecycle hooks, so the core stays free of any metrics
// dependency.
type Metrics struct {
	runs  *prometheus.CounterVec
	steps prometheus.Counter
	span  prometheus.Histogram
}

// NewMetrics creates the collectors. They are unregistered; pass a
// prometheus.Registerer to Register, or collect them manually.
func NewMetrics() *Metrics {
	return &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of finished runs, labeled by outcome.",
			},
			[]string{"outcome"},
		),
		steps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "turing_steps_total",
				Help: "Total number of executed transitions across all runs.",
			},
		),
		span: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "turing_steps_per_run",
				Help:    "Distribution of transitions executed per run.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.runs, m.steps, m.span} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns lifecycle hooks that feed the collectors. Merge them into
// the engine options:
//
//	eng := turing.New(turing.WithLifecycleHooks(metrics.Hooks()))
func (m *Metrics) Hooks() machine.LifecycleHooks {
	return machine.LifecycleHooks{
		OnStep: func(*machine.StepEvent) {
			m.steps.Inc()
		},
		OnHalt: func(e *machine.HaltEvent) {
			m.runs.WithLabelValues(string(e.Verdict.Outcome)).Inc()
			m.span.Observe(float64(e.Steps))
		},
	}
}
