package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RemoteQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diesel_remote_queries_total",
			Help: "Total remote report function calls",
		},
		[]string{"function", "status"},
	)

	RemoteQueryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diesel_remote_query_latency_seconds",
			Help:    "Remote report function latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"function"},
	)

	RemoteRowsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diesel_remote_rows_total",
			Help: "Rows returned by remote report functions",
		},
		[]string{"function"},
	)

	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diesel_dashboard_runs_total",
			Help: "Dashboard pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diesel_catalog_cache_lookups_total",
			Help: "Catalog cache lookups by result",
		},
		[]string{"catalog", "result"},
	)
)
