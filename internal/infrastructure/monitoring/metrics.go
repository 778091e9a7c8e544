// Package monitoring exposes Prometheus metrics for the service: HTTP
// traffic, scan throughput, model inference, and narrative generation.
package monitoring

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/BioTriage/internal/intelligence/common"
)

// Metrics owns the service's Prometheus registry and collectors.  It
// implements common.IntelligenceMetrics for the intelligence layer and adds
// HTTP and pipeline collectors for the interface layer.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	scans         *prometheus.CounterVec
	scanDuration  *prometheus.HistogramVec
	inferences    *prometheus.CounterVec
	inferDuration *prometheus.HistogramVec
	modelLoads    *prometheus.CounterVec
	narrCalls     *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with its own registry, pre-registered
// with the standard Go and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "biotriage_http_requests_total",
			Help: "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "biotriage_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "biotriage_scans_total",
			Help: "Completed triage scans by mode and outcome.",
		}, []string{"mode", "outcome"}),
		scanDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "biotriage_scan_duration_seconds",
			Help:    "Scan wall-clock duration by mode.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"mode"}),
		inferences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "biotriage_inference_batches_total",
			Help: "Model inference batches by model and success.",
		}, []string{"model", "task", "success"}),
		inferDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "biotriage_inference_duration_ms",
			Help:    "Model inference latency in milliseconds.",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"model"}),
		modelLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "biotriage_model_loads_total",
			Help: "Model load attempts by model and success.",
		}, []string{"model", "success"}),
		narrCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "biotriage_narrative_calls_total",
			Help: "Narrative model calls by model and success.",
		}, []string{"model", "success"}),
	}

	reg.MustRegister(
		m.httpRequests, m.httpDuration,
		m.scans, m.scanDuration,
		m.inferences, m.inferDuration,
		m.modelLoads, m.narrCalls,
	)
	return m
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for test assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordScan records a completed (or failed) triage scan.
func (m *Metrics) RecordScan(mode, outcome string, seconds float64) {
	m.scans.WithLabelValues(mode, outcome).Inc()
	if outcome == "ok" {
		m.scanDuration.WithLabelValues(mode).Observe(seconds)
	}
}

// RecordInference implements common.IntelligenceMetrics.
func (m *Metrics) RecordInference(_ context.Context, p *common.InferenceMetricParams) {
	m.inferences.WithLabelValues(p.ModelName, p.TaskType, strconv.FormatBool(p.Success)).Inc()
	m.inferDuration.WithLabelValues(p.ModelName).Observe(p.DurationMs)
}

// RecordModelLoad implements common.IntelligenceMetrics.
func (m *Metrics) RecordModelLoad(_ context.Context, modelName, _ string, _ float64, success bool) {
	m.modelLoads.WithLabelValues(modelName, strconv.FormatBool(success)).Inc()
}

// RecordNarrativeCall implements common.IntelligenceMetrics.
func (m *Metrics) RecordNarrativeCall(_ context.Context, model string, _ float64, success bool) {
	m.narrCalls.WithLabelValues(model, strconv.FormatBool(success)).Inc()
}
