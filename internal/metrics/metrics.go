package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiber_fetch_attempts_total",
		Help: "Registry fetch round trips attempted, including retries",
	}, []string{"schema"})

	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiber_fetch_failures_total",
		Help: "Registry fetches that failed after exhausting retries",
	}, []string{"schema"})

	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fiber_fetch_duration_seconds",
		Help:    "Wall time of a registry fetch including retries and backoff",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
	}, []string{"schema"})

	NodesDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiber_nodes_decoded_total",
		Help: "Nodes decoded from registry batches",
	}, []string{"schema"})

	EntriesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiber_entries_skipped_total",
		Help: "Malformed registry entries dropped while decoding",
	}, []string{"schema"})

	SnapshotNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fiber_snapshot_nodes",
		Help: "Number of nodes in the most recent snapshot of a subnet",
	}, []string{"netuid"})

	HTTPResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiber_http_responses_total",
		Help: "Responses served by the watch http server",
	}, []string{"path", "status_code"})
)
