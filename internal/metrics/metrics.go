package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all Prometheus metrics for the pilotlog service.
// Construct it once per process; promauto registers globally.
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Import Metrics
	RecordsProcessedTotal prometheus.CounterVec
	ImportRunsTotal       prometheus.CounterVec
	ImportRunDuration     prometheus.Histogram
}

// NewRegistry initializes and returns a new Registry with all metrics
func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pilotlog_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pilotlog_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pilotlog_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		RecordsProcessedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pilotlog_import_records_total",
				Help: "Import records processed by table and outcome",
			},
			[]string{"table", "outcome"},
		),
		ImportRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pilotlog_import_runs_total",
				Help: "Import runs by final status",
			},
			[]string{"status"},
		),
		ImportRunDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pilotlog_import_run_duration_seconds",
				Help:    "Wall time of one import run",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
	}
}
