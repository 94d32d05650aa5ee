// Package metrics provides Prometheus metrics for the curation engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline throughput
	runsTotal         prometheus.Counter
	runFailures       prometheus.Counter
	reviewsIngested   prometheus.Counter
	reviewsDuplicate  prometheus.Counter
	submissionsScored prometheus.Counter
	vetoedExcluded    prometheus.Counter

	// Selection outcome of the most recent run
	tierSize       *prometheus.GaugeVec
	selectionTotal prometheus.Gauge

	// Timings
	runDuration     prometheus.Histogram
	scoringDuration prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// customRegistry avoids the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "curation",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.runsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Completed scoring runs",
	})
	m.runFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_failures_total",
		Help:      "Scoring runs that failed",
	})
	m.reviewsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reviews_ingested_total",
		Help:      "Reviews accepted into the pipeline",
	})
	m.reviewsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reviews_duplicate_total",
		Help:      "Reviews dropped for repeating a curator/submission pair",
	})
	m.submissionsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_scored_total",
		Help:      "Submissions scored across all runs",
	})
	m.vetoedExcluded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vetoed_excluded_total",
		Help:      "Submissions excluded by veto across all runs",
	})

	m.tierSize = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tier_size",
		Help:      "Films per selection tier in the most recent run",
	}, []string{"tier"})
	m.selectionTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_total",
		Help:      "Films in the canonical selection of the most recent run",
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "End-to-end run duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.scoringDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_duration_milliseconds",
		Help:      "Scoring stage duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordRun increments the completed-run counter.
func RecordRun() {
	globalManager.runsTotal.Inc()
}

// RecordRunFailure increments the failed-run counter.
func RecordRunFailure() {
	globalManager.runFailures.Inc()
}

// RecordReviewsIngested adds to the accepted-review counter.
func RecordReviewsIngested(count int) {
	globalManager.reviewsIngested.Add(float64(count))
}

// RecordReviewsDuplicate adds to the duplicate-review counter.
func RecordReviewsDuplicate(count int) {
	globalManager.reviewsDuplicate.Add(float64(count))
}

// RecordSubmissionsScored adds to the scored-submission counter.
func RecordSubmissionsScored(count int) {
	globalManager.submissionsScored.Add(float64(count))
}

// RecordVetoedExcluded adds to the veto-exclusion counter.
func RecordVetoedExcluded(count int) {
	globalManager.vetoedExcluded.Add(float64(count))
}

// UpdateTierSize sets the film count for a tier.
func UpdateTierSize(tier string, count int) {
	globalManager.tierSize.WithLabelValues(tier).Set(float64(count))
}

// UpdateSelectionTotal sets the canonical selection size.
func UpdateSelectionTotal(count int) {
	globalManager.selectionTotal.Set(float64(count))
}

// RecordRunDuration records an end-to-end run duration in milliseconds.
func RecordRunDuration(ms float64) {
	globalManager.runDuration.Observe(ms)
}

// RecordScoringDuration records a scoring stage duration in milliseconds.
func RecordScoringDuration(ms float64) {
	globalManager.scoringDuration.Observe(ms)
}

// GetRegistry returns the registry metrics are collected into, for
// exposition via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
