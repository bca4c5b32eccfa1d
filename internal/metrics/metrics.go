// Package metrics defines Prometheus metrics for the visualizer backend.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "daa_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daa_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daa_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daa_runs_total",
			Help: "Completed algorithm runs",
		},
		[]string{"algorithm"},
	)

	RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "daa_run_duration_seconds",
			Help:    "Engine run time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"algorithm"},
	)

	TraceSteps = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "daa_trace_steps",
			Help:    "Steps per recorded trace",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"algorithm"},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "daa_websocket_connections",
			Help: "Active playback WebSocket connections",
		},
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "daa_graph_nodes",
			Help: "Nodes in the workspace graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "daa_graph_edges",
			Help: "Stored directed edges in the workspace graph",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		RunsTotal, RunDuration, TraceSteps,
		WSConnections, NodeCount, EdgeCount,
	)
}
