package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	operations     *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	upstreamErrors *prometheus.CounterVec
	llmCalls       *prometheus.CounterVec
	cacheOutcomes  *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		operations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solpulse_operations_total",
				Help: "Total number of tool operations executed",
			},
			[]string{"operation", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		upstreamErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solpulse_upstream_errors_total",
				Help: "Total number of upstream API errors",
			},
			[]string{"api", "kind"},
		),
		llmCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solpulse_llm_calls_total",
				Help: "Total number of language model calls",
			},
			[]string{"kind", "outcome"},
		),
		cacheOutcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solpulse_cache_requests_total",
				Help: "Cache lookups by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "solpulse_operation_duration_seconds",
				Help:    "Duration of tool operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordOperation records a completed tool operation.
func (r *Recorder) RecordOperation(operation, outcome string) {
	r.operations.WithLabelValues(operation, outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordUpstreamError records a failed upstream API request.
func (r *Recorder) RecordUpstreamError(api, kind string) {
	r.upstreamErrors.WithLabelValues(api, kind).Inc()
}

// RecordLLMCall records a language model call by kind (route, narrate).
func (r *Recorder) RecordLLMCall(kind, outcome string) {
	r.llmCalls.WithLabelValues(kind, outcome).Inc()
}

// RecordCache records a cache lookup outcome (hit, miss).
func (r *Recorder) RecordCache(operation, outcome string) {
	r.cacheOutcomes.WithLabelValues(operation, outcome).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
