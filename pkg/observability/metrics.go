package observability

import (
	"time"

	"github.com/aretw0/prism/pkg/render"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prism collectors.
type Metrics struct {
	renders  *prometheus.CounterVec
	cells    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	requests *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prism_render_total",
				Help: "Total number of render calls by kind",
			},
			[]string{"kind"},
		),
		cells: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prism_render_cells_total",
				Help: "Total number of character cells rendered by kind",
			},
			[]string{"kind"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prism_render_errors_total",
				Help: "Total number of failed render calls by kind",
			},
			[]string{"kind"},
		),
		requests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prism_http_request_duration_seconds",
				Help:    "Duration of HTTP render requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.renders, m.cells, m.errors, m.requests)
	}
	return m
}

// Observe records one render event.
func (m *Metrics) Observe(e render.Event) {
	kind := string(e.Kind)
	m.renders.WithLabelValues(kind).Inc()
	if e.Err != nil {
		m.errors.WithLabelValues(kind).Inc()
		return
	}
	m.cells.WithLabelValues(kind).Add(float64(e.Cells))
}

// Hooks returns render hooks that feed these metrics.
func (m *Metrics) Hooks() render.Hooks {
	return render.Hooks{OnRender: m.Observe}
}

// ObserveRequest records the duration of an HTTP request.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	m.requests.WithLabelValues(route, status).Observe(d.Seconds())
}
