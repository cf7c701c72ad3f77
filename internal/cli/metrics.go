package cli

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/clockface/pkg/observability"
)

// metrics is the Prometheus registry of the preview server. It doubles as
// the pipeline hooks so that the start-up render is visible on /metrics.
type metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	renders   *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
}

var _ observability.PipelineHooks = (*metrics)(nil)

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clockface_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		renders: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clockface_render_duration_seconds",
			Help:    "Time spent resolving and rendering a clock face.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"format", "result"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clockface_option_fallbacks_total",
			Help: "Option values replaced by their defaults, by option.",
		}, []string{"field"}),
	}
	m.registry.MustRegister(m.requests, m.renders, m.fallbacks)
	return m
}

func (m *metrics) OnFallback(_ context.Context, field string) {
	m.fallbacks.WithLabelValues(field).Inc()
}

func (m *metrics) OnRenderStart(context.Context, string) {}

func (m *metrics) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.renders.WithLabelValues(format, result).Observe(d.Seconds())
}
