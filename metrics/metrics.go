// Package metrics holds the Prometheus instruments for the HTTP surface and
// the estimation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smartcalories"

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	// Labels: mode (mock, live), path (text, image), outcome (success, validation, malformed, upstream, error)
	EstimationsTotal *prometheus.CounterVec
	LogsAppended     prometheus.Counter
}

// New creates the instruments and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"route", "method"}),
		EstimationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "estimation",
			Name:      "requests_total",
			Help:      "Estimation calls by mode, input path and outcome",
		}, []string{"mode", "path", "outcome"}),
		LogsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "logs",
			Name:      "appended_total",
			Help:      "Log entries appended",
		}),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.EstimationsTotal, m.LogsAppended)
	return m
}

func (m *Metrics) ObserveEstimation(mode, path, outcome string) {
	m.EstimationsTotal.WithLabelValues(mode, path, outcome).Inc()
}
