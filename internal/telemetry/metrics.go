// Package telemetry exports search statistics as Prometheus metrics.
//
// Metrics live on a private registry so several searches in one process (or
// one test binary) never collide with the global default registry. The CLI
// writes them with WriteTextfile for the node-exporter textfile collector.
package telemetry

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lazybeaver/search"
)

// Metrics implements search.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	machines *prometheus.CounterVec
	budget   *prometheus.GaugeVec
	least    *prometheus.GaugeVec
	duration prometheus.Histogram
}

var _ search.Recorder = (*Metrics)(nil)

// New registers the lazy beaver metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lazybeaver_runs_total",
			Help: "Bounded enumerations by result (found, exhausted)",
		}, []string{"states", "result"}),
		machines: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lazybeaver_machines_total",
			Help: "Machines examined by outcome",
		}, []string{"states", "outcome"}),
		budget: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lazybeaver_budget_steps",
			Help: "Step budget of the latest enumeration",
		}, []string{"states"}),
		least: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lazybeaver_least_unwitnessed_steps",
			Help: "Least step count no machine halts at, once found",
		}, []string{"states"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lazybeaver_run_duration_seconds",
			Help:    "Wall time of one bounded enumeration",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12), // 1ms to ~70min
		}),
	}
}

// RecordRun adds one finished enumeration.
func (m *Metrics) RecordRun(res search.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	n := strconv.Itoa(res.States)

	result := "exhausted"
	if res.Found {
		result = "found"
		m.least.WithLabelValues(n).Set(float64(res.Least))
	}
	m.runs.WithLabelValues(n, result).Inc()

	s := res.Stats
	m.machines.WithLabelValues(n, "halted").Add(float64(s.Halted))
	m.machines.WithLabelValues(n, "never_halts").Add(float64(s.NeverHalts))
	m.machines.WithLabelValues(n, "still_running").Add(float64(s.StillRunning))
	m.machines.WithLabelValues(n, "refined").Add(float64(s.Refined))

	m.budget.WithLabelValues(n).Set(float64(res.Budget))
	m.duration.Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}

	return nil
}
