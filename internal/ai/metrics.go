package ai

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ai_service",
		Subsystem: "provider",
		Name:      "requests_total",
		Help:      "Number of AI provider calls grouped by outcome.",
	}, []string{"outcome"})

	requestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ai_service",
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Latency of AI provider calls.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

func observeRequest(outcome string, elapsed time.Duration) {
	requestCounter.WithLabelValues(outcome).Inc()
	requestDuration.Observe(elapsed.Seconds())
}
