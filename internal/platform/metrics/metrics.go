// Package metrics exposes Prometheus instrumentation for generation requests
// and HTTP responses.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seogen"

// Metrics holds the collectors registered for one process.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	generationRequests *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	tokensUsed         *prometheus.CounterVec
	retries            prometheus.Counter
	httpResponses      *prometheus.CounterVec
}

// New creates the collectors on a private registry so tests and multiple
// servers in one process never collide on the global default registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		generationRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_requests_total",
				Help:      "Total number of Gemini generate calls, partitioned by task, model and status.",
			},
			[]string{"task", "model", "status"},
		),
		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Latency of single Gemini generate calls.",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
			},
			[]string{"task", "model"},
		),
		tokensUsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ai_tokens_used_total",
				Help:      "Total number of AI tokens used, partitioned by task and kind (prompt, candidates).",
			},
			[]string{"task", "kind"},
		),
		retries: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_retries_total",
				Help:      "Total number of rate-limit retries scheduled.",
			},
		),
		httpResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_responses_total",
				Help:      "Total number of HTTP responses, partitioned by route and status code.",
			},
			[]string{"route", "code"},
		),
	}
}

// ObserveGeneration records one provider call.
func (m *Metrics) ObserveGeneration(task, model, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.generationRequests.WithLabelValues(task, model, status).Inc()
	m.generationDuration.WithLabelValues(task, model).Observe(elapsed.Seconds())
}

// AddTokens adds token usage reported by the provider.
func (m *Metrics) AddTokens(task string, prompt, candidates int32) {
	if m == nil {
		return
	}
	if prompt > 0 {
		m.tokensUsed.WithLabelValues(task, "prompt").Add(float64(prompt))
	}
	if candidates > 0 {
		m.tokensUsed.WithLabelValues(task, "candidates").Add(float64(candidates))
	}
}

// IncRetry counts one scheduled retry.
func (m *Metrics) IncRetry() {
	if m == nil {
		return
	}
	m.retries.Inc()
}

// ObserveResponse counts one HTTP response.
func (m *Metrics) ObserveResponse(route string, code int) {
	if m == nil {
		return
	}
	m.httpResponses.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
