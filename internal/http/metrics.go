package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus instruments on a private
// registry, keeping the default Go collectors out of /metrics.
type Metrics struct {
	registry *prometheus.Registry

	extractions    prometheus.Counter
	tasksExtracted prometheus.Counter
	extractSeconds prometheus.Histogram
	resolutions    *prometheus.CounterVec
}

// NewMetrics creates and registers the server instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		extractions: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "taskd",
			Subsystem: "extraction",
			Name:      "requests_total",
			Help:      "Total number of extraction requests served",
		}),
		tasksExtracted: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "taskd",
			Subsystem: "extraction",
			Name:      "tasks_total",
			Help:      "Total number of tasks produced by extraction requests",
		}),
		extractSeconds: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "taskd",
			Subsystem: "extraction",
			Name:      "duration_seconds",
			Help:      "Histogram of extraction request durations",
			Buckets:   prometheus.DefBuckets,
		}),
		resolutions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taskd",
			Subsystem: "resolver",
			Name:      "requests_total",
			Help:      "Total number of resolution requests by outcome",
		}, []string{"outcome"}),
	}
}

// handler serves the registry in Prometheus exposition format.
func (m *Metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
