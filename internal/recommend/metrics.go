package recommend

import "github.com/prometheus/client_golang/prometheus"

var (
	parsedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ai_service",
		Subsystem: "parser",
		Name:      "responses_parsed_total",
		Help:      "Number of provider responses parsed into genuine recommendations.",
	})

	fallbackCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ai_service",
		Subsystem: "parser",
		Name:      "fallbacks_total",
		Help:      "Number of fallback recommendations grouped by parse failure reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(parsedCounter, fallbackCounter)
}

func recordParsed() {
	parsedCounter.Inc()
}

func recordParseFallback(reason string) {
	fallbackCounter.WithLabelValues(reason).Inc()
}
