package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quill_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ReadingsIngested counts simulated readings recorded per source type.
	ReadingsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quill_readings_ingested_total",
			Help: "Total number of readings recorded",
		},
		[]string{"source_type"},
	)

	// ProbeResults counts connectivity probe outcomes (success|failure).
	ProbeResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quill_probe_results_total",
			Help: "Total number of connectivity probes by outcome",
		},
		[]string{"collection", "result"},
	)

	// ConnectionsByStatus tracks configured connections per status.
	ConnectionsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quill_connections_by_status",
			Help: "Number of configured connections grouped by status",
		},
		[]string{"status"},
	)
)
