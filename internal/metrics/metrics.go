// Package metrics defines the Prometheus instruments exposed by the
// serve command. The hooks bridge in this package's sibling file feeds
// them from the observability hook points so the graph core stays free
// of a Prometheus dependency.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CellsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cellgraph_cells_added_total",
		Help: "Total number of cells added to the model, labelled by kind.",
	}, []string{"kind"})

	CellsRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cellgraph_cells_removed_total",
		Help: "Total number of cells removed from the model, labelled by kind.",
	}, []string{"kind"})

	BatchesExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cellgraph_batches_executed_total",
		Help: "Total number of named mutation batches executed.",
	}, []string{"name"})

	Queries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cellgraph_queries_total",
		Help: "Total number of graph queries served, labelled by operation and status.",
	}, []string{"op", "status"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cellgraph_query_duration_ms",
		Help:    "Graph query latency in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"op"})

	CacheOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cellgraph_cache_operations_total",
		Help: "Total number of cache operations, labelled by key type and outcome.",
	}, []string{"key_type", "outcome"})

	GraphReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cellgraph_graph_reloads_total",
		Help: "Total number of graph file reloads performed by the server.",
	})

	HTTPInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cellgraph_http_in_flight_requests",
		Help: "Number of HTTP requests currently being served.",
	})
)
