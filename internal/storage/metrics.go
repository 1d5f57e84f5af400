package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulsefit_db_query_duration_seconds",
			Help:    "Duration of database queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	queryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulsefit_db_query_errors_total",
			Help: "Total number of failed database queries",
		},
		[]string{"op"},
	)
)
