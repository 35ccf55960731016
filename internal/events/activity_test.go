package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)
	activity := domain.Activity{
		ID:             "activity-1",
		UserID:         "user-1",
		Type:           domain.ActivityHiking,
		Duration:       120,
		CaloriesBurned: 800,
		StartTime:      now,
		AdditionalMetrics: map[string]any{
			"elevation_gain_m": float64(450),
			"trail":            "ridge loop",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	payload, err := json.Marshal(FromActivity(activity))
	require.NoError(t, err)

	var envelope ActivityCreated
	require.NoError(t, json.Unmarshal(payload, &envelope))

	restored := envelope.ToActivity()
	require.Equal(t, activity.ID, restored.ID)
	require.Equal(t, activity.UserID, restored.UserID)
	require.Equal(t, activity.Type, restored.Type)
	require.Equal(t, activity.Duration, restored.Duration)
	require.Equal(t, activity.CaloriesBurned, restored.CaloriesBurned)
	require.True(t, activity.StartTime.Equal(restored.StartTime))
	require.Equal(t, activity.AdditionalMetrics, restored.AdditionalMetrics)
}

func TestEnvelopeOmitsEmptyMetrics(t *testing.T) {
	activity := domain.Activity{ID: "a", UserID: "u", Type: domain.ActivityWalking}

	payload, err := json.Marshal(FromActivity(activity))
	require.NoError(t, err)
	require.NotContains(t, string(payload), "additional_metrics")
}
