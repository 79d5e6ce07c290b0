// Package metrics provides Prometheus metrics for the donatugee client and stub backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "donatugee"

// latencyBuckets are the millisecond buckets of every duration histogram.
var latencyBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000} //nolint:gochecknoglobals // shared bucket layout

// Manager owns every collector registered by this package.
type Manager struct {
	enabled  bool
	registry prometheus.Registerer

	// Client calls against the backend
	clientRequests        *prometheus.CounterVec
	clientRequestDuration *prometheus.HistogramVec
	clientInFlight        prometheus.Gauge
	clientResponseBytes   *prometheus.HistogramVec

	// Stub backend HTTP traffic
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// Stub backend store
	storeRecords *prometheus.GaugeVec

	// Scenario runs
	scenarioSteps *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry without default Go collectors

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		enabled:  true,
		registry: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per collector
	auto := promauto.With(m.registry)

	m.clientRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Backend calls issued by the client by operation, status code and outcome",
	}, []string{"operation", "status_code", "outcome"})

	m.clientRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "request_duration_milliseconds",
		Help:      "Round trip time of client calls in milliseconds, including body read",
		Buckets:   latencyBuckets,
	}, []string{"operation", "outcome"})

	m.clientInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "requests_in_flight",
		Help:      "Client calls currently waiting on the backend",
	})

	m.clientResponseBytes = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "response_bytes",
		Help:      "Size of response bodies received by the client",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
	}, []string{"operation"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stub",
		Name:      "http_requests_total",
		Help:      "Requests served by the stub backend by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "stub",
		Name:      "http_request_duration_milliseconds",
		Help:      "Stub backend request duration in milliseconds",
		Buckets:   latencyBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stub",
		Name:      "errors_by_endpoint_total",
		Help:      "Error responses served by the stub backend by endpoint and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.storeRecords = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "stub",
		Name:      "store_records",
		Help:      "Records held by the stub backend store by entity",
	}, []string{"entity"})

	m.scenarioSteps = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scenario",
		Name:      "steps_total",
		Help:      "Scenario steps executed by step name and result",
	}, []string{"step", "result"})
}

// Client metrics.

// RecordClientRequest counts one finished client call. statusCode is empty when no response arrived.
func (m *Manager) RecordClientRequest(operation, statusCode, outcome string, durationMs float64) {
	if !m.enabled {
		return
	}
	if statusCode == "" {
		statusCode = "none"
	}
	m.clientRequests.WithLabelValues(operation, statusCode, outcome).Inc()
	m.clientRequestDuration.WithLabelValues(operation, outcome).Observe(durationMs)
}

// RecordClientResponseSize observes the body size of a received response.
func (m *Manager) RecordClientResponseSize(operation string, bytes int) {
	if !m.enabled {
		return
	}
	m.clientResponseBytes.WithLabelValues(operation).Observe(float64(bytes))
}

// ClientRequestStarted and ClientRequestFinished bracket a call for the in-flight gauge.
func (m *Manager) ClientRequestStarted() {
	if m.enabled {
		m.clientInFlight.Inc()
	}
}

func (m *Manager) ClientRequestFinished() {
	if m.enabled {
		m.clientInFlight.Dec()
	}
}

// Stub backend metrics.

// RecordHTTPRequest records one served request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint counts an error response of the given type.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if m.enabled {
		m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// UpdateStoreRecords sets the record count for an entity.
func (m *Manager) UpdateStoreRecords(entity string, count int) {
	if m.enabled {
		m.storeRecords.WithLabelValues(entity).Set(float64(count))
	}
}

// RecordScenarioStep counts one scenario step with its result ("ok" or "failed").
func (m *Manager) RecordScenarioStep(step, result string) {
	if m.enabled {
		m.scenarioSteps.WithLabelValues(step, result).Inc()
	}
}

// Package-level shortcuts on the global manager.

// Default returns the global manager registered on the custom registry.
func Default() *Manager { return globalManager }

// RecordHTTPRequest records on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordErrorByEndpoint records on the global manager.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// UpdateStoreRecords records on the global manager.
func UpdateStoreRecords(entity string, count int) {
	globalManager.UpdateStoreRecords(entity, count)
}

// RecordScenarioStep records on the global manager.
func RecordScenarioStep(step, result string) {
	globalManager.RecordScenarioStep(step, result)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
