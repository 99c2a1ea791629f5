package rest

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expenses",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"route", "code"},
)

func observeRequest(route string, code int, elapsed time.Duration) {
	histogramRequestDuration.
		WithLabelValues(route, strconv.Itoa(code)).
		Observe(elapsed.Seconds())
}
