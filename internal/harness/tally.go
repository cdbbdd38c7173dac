package harness

import (
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tally accumulates outcomes of one run. Each run owns its tally, and the
// metrics live on a private registry, so runs never share counters.
// Safe for concurrent use.
type Tally struct {
	runID    string
	registry *prometheus.Registry

	scenarios *prometheus.CounterVec
	failures  *prometheus.CounterVec
	passes    *prometheus.CounterVec
	duration  *prometheus.HistogramVec

	mu       sync.Mutex
	outcomes []Outcome
}

// NewTally creates an empty tally with a fresh run ID.
func NewTally() *Tally {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Tally{
		runID:    uuid.NewString(),
		registry: reg,
		scenarios: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "panelcheck",
			Name:      "scenarios_total",
			Help:      "Scenarios run, by panel kind, engine and status.",
		}, []string{"kind", "engine", "status"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "panelcheck",
			Name:      "check_failures_total",
			Help:      "Individual invariant violations reported.",
		}, []string{"kind", "engine"}),
		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "panelcheck",
			Name:      "arrange_passes_total",
			Help:      "Engine arrangements performed.",
		}, []string{"engine"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "panelcheck",
			Name:      "scenario_duration_seconds",
			Help:      "Wall-clock time per scenario.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"engine"}),
	}
}

// RunID identifies the run.
func (t *Tally) RunID() string {
	return t.runID
}

// Record adds an outcome.
func (t *Tally) Record(o Outcome) {
	kind := string(o.Kind)
	t.scenarios.WithLabelValues(kind, o.Engine, string(o.Status)).Inc()
	if n := len(o.Failures); n > 0 {
		t.failures.WithLabelValues(kind, o.Engine).Add(float64(n))
	}
	t.passes.WithLabelValues(o.Engine).Add(float64(o.Passes))
	t.duration.WithLabelValues(o.Engine).Observe(o.Duration.Seconds())

	t.mu.Lock()
	t.outcomes = append(t.outcomes, o)
	t.mu.Unlock()
}

// Outcomes returns a copy of everything recorded so far.
func (t *Tally) Outcomes() []Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Outcome(nil), t.outcomes...)
}

// Counts returns the number of outcomes per status.
func (t *Tally) Counts() map[Status]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[Status]int)
	for _, o := range t.outcomes {
		out[o.Status]++
	}
	return out
}

// Failed reports whether any recorded outcome failed.
func (t *Tally) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, o := range t.outcomes {
		if o.Failed() {
			return true
		}
	}
	return false
}

// Gatherer exposes the tally's metrics.
func (t *Tally) Gatherer() prometheus.Gatherer {
	return t.registry
}
