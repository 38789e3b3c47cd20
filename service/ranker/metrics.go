package ranker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "graphrank",
		Subsystem: "ranker",
		Name:      "runs_total",
		Help:      "Completed centrality computations per algorithm.",
	}, []string{"algorithm"})

	runFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "graphrank",
		Subsystem: "ranker",
		Name:      "run_failures_total",
		Help:      "Failed centrality computations per algorithm.",
	}, []string{"algorithm"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "graphrank",
		Subsystem: "ranker",
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of centrality computations.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
	}, []string{"algorithm"})
)
