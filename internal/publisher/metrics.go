package publisher

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "publisher",
		Name:      "events_published_total",
		Help:      "Number of activity events successfully published to Kafka.",
	})

	failedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "publisher",
		Name:      "events_failed_total",
		Help:      "Number of activity events that failed to publish.",
	})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter)
}
