// Package events defines the wire payloads carried across the broker.
package events

import (
	"time"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
)

// TypeActivityCreated is the event_type header value for new activities.
const TypeActivityCreated = "activity.created"

// ActivityCreated is the envelope emitted when a new activity is accepted.
// It carries the full activity payload so consumers never have to read the
// producer's store.
type ActivityCreated struct {
	ActivityID        string         `json:"activity_id"`
	UserID            string         `json:"user_id"`
	ActivityType      string         `json:"activity_type"`
	DurationMin       int            `json:"duration_min"`
	CaloriesBurned    int            `json:"calories_burned"`
	StartedAt         time.Time      `json:"started_at"`
	AdditionalMetrics map[string]any `json:"additional_metrics,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// FromActivity builds the envelope for a domain activity.
func FromActivity(a domain.Activity) ActivityCreated {
	return ActivityCreated{
		ActivityID:        a.ID,
		UserID:            a.UserID,
		ActivityType:      string(a.Type),
		DurationMin:       a.Duration,
		CaloriesBurned:    a.CaloriesBurned,
		StartedAt:         a.StartTime,
		AdditionalMetrics: a.AdditionalMetrics,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// ToActivity reconstructs the domain activity on the consumer side.
func (e ActivityCreated) ToActivity() domain.Activity {
	return domain.Activity{
		ID:                e.ActivityID,
		UserID:            e.UserID,
		Type:              domain.ActivityType(e.ActivityType),
		Duration:          e.DurationMin,
		CaloriesBurned:    e.CaloriesBurned,
		StartTime:         e.StartedAt,
		AdditionalMetrics: e.AdditionalMetrics,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
