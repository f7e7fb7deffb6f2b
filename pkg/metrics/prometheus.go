// Package metrics provides Prometheus metrics for the SEIHRD microsimulation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the simulation.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Scenario sweep metrics
	scenarioRuns  prometheus.Counter
	scenarioFails prometheus.Counter
	deathToll     *prometheus.GaugeVec

	// Engine metrics
	daysSimulated   prometheus.Counter
	dayDuration     prometheus.Histogram
	populationSize  prometheus.Gauge
	statusCount     *prometheus.GaugeVec
	overloadDays    prometheus.Counter
	contactEdges    prometheus.Counter
	trajectoryRows  prometheus.Counter
	trajectoryFails prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "seihrd",
		subsystem:        "simulation",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scenarioRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenario_runs_total",
		Help:      "Total number of completed scenario runs",
	})

	m.scenarioFails = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenario_failures_total",
		Help:      "Total number of scenario runs that ended in error",
	})

	m.deathToll = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "scenario_death_toll",
			Help:      "Final death toll of the most recent run per scenario",
		},
		[]string{"scenario"},
	)

	m.daysSimulated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days_simulated_total",
		Help:      "Total number of simulated days across all runs",
	})

	m.dayDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "day_duration_milliseconds",
		Help:      "Histogram of wall-clock time spent simulating a single day",
		Buckets:   m.histogramBuckets,
	})

	m.populationSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "population_size",
		Help:      "Number of persons in the most recently built population",
	})

	m.statusCount = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "status_count",
			Help:      "Number of persons per epidemiological status on the latest simulated day",
		},
		[]string{"status"},
	)

	m.overloadDays = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hospital_overload_days_total",
		Help:      "Total number of simulated days on which hospitals were over capacity",
	})

	m.contactEdges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contact_edges_total",
		Help:      "Total number of directed contact edges created while building graphs",
	})

	m.trajectoryRows = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trajectory_rows_written_total",
		Help:      "Total number of day rows persisted to trajectory logs",
	})

	m.trajectoryFails = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trajectory_write_errors_total",
		Help:      "Total number of failed trajectory log writes",
	})
}

// Handler returns an HTTP handler exposing the custom registry, for callers
// that embed the simulation in a process with an HTTP surface.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// Global helper functions backed by the singleton manager.

// RecordScenarioRun increments the completed scenario run counter.
func RecordScenarioRun() {
	if globalManager.enabled {
		globalManager.scenarioRuns.Inc()
	}
}

// RecordScenarioFailure increments the failed scenario run counter.
func RecordScenarioFailure() {
	if globalManager.enabled {
		globalManager.scenarioFails.Inc()
	}
}

// UpdateDeathToll records the final death toll for a named scenario.
func UpdateDeathToll(scenario string, deaths int) {
	if globalManager.enabled {
		globalManager.deathToll.WithLabelValues(scenario).Set(float64(deaths))
	}
}

// RecordDaySimulated increments the simulated day counter.
func RecordDaySimulated() {
	if globalManager.enabled {
		globalManager.daysSimulated.Inc()
	}
}

// ObserveDayDuration records the wall-clock duration of one simulated day.
func ObserveDayDuration(ms float64) {
	if globalManager.enabled {
		globalManager.dayDuration.Observe(ms)
	}
}

// UpdatePopulationSize records the size of the active population.
func UpdatePopulationSize(n int) {
	if globalManager.enabled {
		globalManager.populationSize.Set(float64(n))
	}
}

// UpdateStatusCount records the person count for one status.
func UpdateStatusCount(status string, n int) {
	if globalManager.enabled {
		globalManager.statusCount.WithLabelValues(status).Set(float64(n))
	}
}

// RecordOverloadDay increments the hospital overload day counter.
func RecordOverloadDay() {
	if globalManager.enabled {
		globalManager.overloadDays.Inc()
	}
}

// RecordContactEdges adds to the directed contact edge counter.
func RecordContactEdges(n int) {
	if globalManager.enabled {
		globalManager.contactEdges.Add(float64(n))
	}
}

// RecordTrajectoryRow increments the persisted trajectory row counter.
func RecordTrajectoryRow() {
	if globalManager.enabled {
		globalManager.trajectoryRows.Inc()
	}
}

// RecordTrajectoryWriteError increments the trajectory write error counter.
func RecordTrajectoryWriteError() {
	if globalManager.enabled {
		globalManager.trajectoryFails.Inc()
	}
}
