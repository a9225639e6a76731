package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bess",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by path and status code.",
	}, []string{"path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bess",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})
)
