package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/seantiz/letterfreq/internal/model"
)

var (
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "letterfreq_runs_total",
			Help: "Total number of frequency runs by strategy and outcome.",
		},
		[]string{"strategy", "status"},
	)

	linesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "letterfreq_lines_total",
			Help: "Total number of input lines counted.",
		},
	)

	runesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "letterfreq_runes_total",
			Help: "Total number of runes tallied into histograms.",
		},
	)

	runDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "letterfreq_run_seconds",
			Help:    "Duration from partitioning to the merged histogram, in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	workersRequested = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "letterfreq_workers",
			Help:    "Worker count requested per accepted run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(runsTotal)
	prometheus.MustRegister(linesTotal)
	prometheus.MustRegister(runesTotal)
	prometheus.MustRegister(runDuration)
	prometheus.MustRegister(workersRequested)

	// Pre-initialize label combinations so every series is exported at 0.
	for _, s := range []Strategy{StrategyMerge, StrategyShared} {
		runsTotal.WithLabelValues(string(s), model.StatusCompleted)
		runsTotal.WithLabelValues(string(s), model.StatusRejected)
		runsTotal.WithLabelValues(string(s), model.StatusFailed)
	}
}
