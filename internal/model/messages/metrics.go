package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var responseDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expenses",
		Subsystem: "telegram",
		Name:      "response_duration_seconds",
		Help:      "Time from receiving a chat message to sending its reply.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	},
	[]string{"failed"},
)

func observeResponse(elapsed time.Duration, failed bool) {
	responseDuration.WithLabelValues(strconv.FormatBool(failed)).Observe(elapsed.Seconds())
}
