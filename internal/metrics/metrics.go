package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for ReadsTotal
const (
	OutcomeOK          = "ok"
	OutcomeIOError     = "io_error"
	OutcomeDecodeError = "decode_error"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	// Read metrics
	ReadsTotal     *prometheus.CounterVec
	LinesDelivered prometheus.Gauge

	// Watch metrics
	WatchActive prometheus.Gauge
}

// NewMetrics creates and registers all metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		// Read metrics
		ReadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tail_reads_total",
				Help: "Total number of tail reads",
			},
			[]string{"outcome"},
		),
		LinesDelivered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tail_lines_delivered",
				Help: "Number of lines in the most recently delivered batch",
			},
		),

		// Watch metrics
		WatchActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tail_watch_active",
				Help: "Whether a file watch is currently active (1) or idle (0)",
			},
		),
	}

	// Register all metrics
	m.registerMetrics()

	return m
}

// registerMetrics registers all metrics with the registry
func (m *Metrics) registerMetrics() {
	m.registry.MustRegister(m.ReadsTotal)
	m.registry.MustRegister(m.LinesDelivered)
	m.registry.MustRegister(m.WatchActive)
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
