// Package monitoring exposes Prometheus instrumentation for the compute
// pipeline. "Metrics" elsewhere in this codebase means derived player
// metrics; everything here is operational only.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ComputationsTotal counts compute runs by outcome.
	ComputationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finsight",
		Subsystem: "compute",
		Name:      "runs_total",
		Help:      "Number of evaluation compute runs, labeled by outcome.",
	}, []string{"status"})

	// PlayersScored counts players whose results were persisted.
	PlayersScored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "finsight",
		Subsystem: "compute",
		Name:      "players_scored_total",
		Help:      "Number of per-player result sets written.",
	})

	// ComputeDuration observes end-to-end compute latency including the
	// cohort history scan and the result transaction.
	ComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "finsight",
		Subsystem: "compute",
		Name:      "run_duration_seconds",
		Help:      "End-to-end duration of one compute run.",
		Buckets:   prometheus.DefBuckets,
	})
)
