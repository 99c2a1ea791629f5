package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var storedExpenses = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "expenses",
		Subsystem: "storage",
		Name:      "stored_expenses",
		Help:      "Number of expenses held in memory.",
	},
)
