// Package metrics provides Prometheus metrics for the ingestion pipeline
// and its HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Fetch metrics - the only network-facing step
	fetchAttempts  *prometheus.CounterVec
	fetchFailures  *prometheus.CounterVec
	fetchFallbacks prometheus.Counter
	fetchLatency   prometheus.Histogram
	payloadBytes   prometheus.Histogram

	// Pipeline metrics - tokenize/resolve/normalize/validate
	rowsParsed          prometheus.Counter
	rowsSkipped         prometheus.Counter
	validationFailures  *prometheus.CounterVec
	unresolvedFields    prometheus.Gauge
	snapshotRebuilds    prometheus.Counter
	snapshotRebuildTime prometheus.Histogram

	// Serving metrics
	creatorsTotal        prometheus.Gauge
	openPredictionsTotal prometheus.Gauge
	snapshotLastUnix     prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pundit",
		subsystem:        "ingest",
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

	m.fetchAttempts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_attempts_total",
		Help:      "Snapshot fetch attempts by endpoint",
	}, []string{"source"})

	m.fetchFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_failures_total",
		Help:      "Snapshot fetch failures by endpoint",
	}, []string{"source"})

	m.fetchFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_fallbacks_total",
		Help:      "Times the secondary endpoint was tried after a primary failure",
	})

	m.fetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_latency_milliseconds",
		Help:      "End-to-end snapshot fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.payloadBytes = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "payload_bytes",
		Help:      "Fetched payload size in bytes",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
	})

	m.rowsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_parsed_total",
		Help:      "Data rows normalized into creator records",
	})

	m.rowsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_skipped_total",
		Help:      "Blank-name rows skipped during normalization",
	})

	m.validationFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Snapshots rejected by the validation gate, by reason",
	}, []string{"reason"})

	m.unresolvedFields = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unresolved_fields",
		Help:      "Canonical fields that did not bind on the last resolve (alias drift indicator)",
	})

	m.snapshotRebuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_rebuilds_total",
		Help:      "Snapshots successfully rebuilt",
	})

	m.snapshotRebuildTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_rebuild_milliseconds",
		Help:      "Time to tokenize, resolve, normalize, and validate a snapshot",
		Buckets:   m.histogramBuckets,
	})

	m.creatorsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "creators_total",
		Help:      "Creator records in the serving snapshot",
	})

	m.openPredictionsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "open_predictions_total",
		Help:      "Open predictions currently tracked",
	})

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unix",
		Help:      "Fetch time of the live snapshot as a unix timestamp",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Errors by component and kind",
	}, []string{"component", "kind"})
}

// GetRegistry returns the registry backing the global manager, for serving
// /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Global recording helpers, mirroring the Manager fields.

func RecordFetchAttempt(source string)  { globalManager.fetchAttempts.WithLabelValues(source).Inc() }
func RecordFetchFailure(source string)  { globalManager.fetchFailures.WithLabelValues(source).Inc() }
func RecordFetchFallback()              { globalManager.fetchFallbacks.Inc() }
func RecordFetchLatency(ms float64)     { globalManager.fetchLatency.Observe(ms) }
func RecordPayloadBytes(n int)          { globalManager.payloadBytes.Observe(float64(n)) }
func RecordRowsParsed(n int)            { globalManager.rowsParsed.Add(float64(n)) }
func RecordRowSkipped()                 { globalManager.rowsSkipped.Inc() }
func UpdateUnresolvedFields(n int)      { globalManager.unresolvedFields.Set(float64(n)) }
func UpdateCreatorsTotal(n int)         { globalManager.creatorsTotal.Set(float64(n)) }
func UpdateOpenPredictionsTotal(n int)  { globalManager.openPredictionsTotal.Set(float64(n)) }
func UpdateSnapshotLastUnix(unix int64) { globalManager.snapshotLastUnix.Set(float64(unix)) }

// RecordSnapshotRebuild counts a successful rebuild and observes its
// duration.
func RecordSnapshotRebuild(ms float64) {
	globalManager.snapshotRebuilds.Inc()
	globalManager.snapshotRebuildTime.Observe(ms)
}

// RecordValidationFailure counts a gate rejection by reason.
func RecordValidationFailure(reason string) {
	globalManager.validationFailures.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordErrorByComponent counts an error by component and kind.
func RecordErrorByComponent(component, kind string) {
	globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
}
