// Package observability exposes cross-package watermark gauges.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	recommendationStoredGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ai_service",
		Subsystem: "persistence",
		Name:      "last_recommendation_stored_timestamp_seconds",
		Help:      "Unix timestamp of the most recent recommendation persisted to Postgres.",
	})
	userSyncedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gateway",
		Subsystem: "usersync",
		Name:      "last_user_synced_timestamp_seconds",
		Help:      "Unix timestamp of the most recent user upsert.",
	})
)

func init() {
	prometheus.MustRegister(recommendationStoredGauge, userSyncedGauge)
}

// RecordRecommendationStored updates the persistence watermark gauge.
func RecordRecommendationStored(ts time.Time) {
	if ts.IsZero() {
		return
	}
	recommendationStoredGauge.Set(float64(ts.Unix()))
}

// RecordUserSynced updates the user sync watermark gauge.
func RecordUserSynced(ts time.Time) {
	if ts.IsZero() {
		return
	}
	userSyncedGauge.Set(float64(ts.Unix()))
}
