// Package metrics exports Prometheus metrics for the dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route pattern.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glucose_dashboard_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glucose_dashboard_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"endpoint", "method"},
	)

	// AnalysisRuns counts chart computations by kind.
	AnalysisRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glucose_dashboard_analysis_runs_total",
			Help: "Total number of chart computations",
		},
		[]string{"analysis"},
	)

	AnalysisLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glucose_dashboard_analysis_latency_seconds",
			Help:    "Chart computation latency in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1},
		},
		[]string{"analysis"},
	)

	// SeriesPoints observes how many minute offsets an averaged series holds.
	SeriesPoints = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "glucose_dashboard_series_points",
			Help:    "Minute offsets per averaged glucose series",
			Buckets: prometheus.LinearBuckets(0, 5, 6),
		},
	)

	// RecordsLoaded holds the size of the currently loaded datasets.
	RecordsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "glucose_dashboard_records_loaded",
			Help: "Number of records in the loaded datasets",
		},
		[]string{"dataset"},
	)

	DatasetLoadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glucose_dashboard_dataset_load_failures_total",
			Help: "Total number of failed dataset loads",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "glucose_dashboard_sessions",
			Help: "Number of dashboard sessions created",
		},
	)
)

// ObserveLoad records the size of freshly loaded datasets.
func ObserveLoad(glucose, meals int) {
	RecordsLoaded.WithLabelValues("glucose").Set(float64(glucose))
	RecordsLoaded.WithLabelValues("meals").Set(float64(meals))
}
