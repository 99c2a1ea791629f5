package reports

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scheduledRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "scheduler",
			Name:      "runs_total",
			Help:      "Scheduled runs by job and outcome.",
		},
		[]string{"job", "failed"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "expenses",
			Subsystem: "scheduler",
			Name:      "run_duration_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"job"},
	)

	publishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "reports",
			Name:      "publish_failures_total",
			Help:      "Generated reports that could not be published.",
		},
		[]string{"period"},
	)
)

func observeRun(job string, elapsed time.Duration, failed bool) {
	scheduledRuns.WithLabelValues(job, strconv.FormatBool(failed)).Inc()
	runDuration.WithLabelValues(job).Observe(elapsed.Seconds())
}
