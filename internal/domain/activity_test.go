package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestActivityTypeIsValid(t *testing.T) {
	require.True(t, ActivityRunning.IsValid())
	require.True(t, ActivityWeightLifting.IsValid())
	require.True(t, ActivityCricket.IsValid())
	require.False(t, ActivityType("JOGGING").IsValid())
	require.False(t, ActivityType("").IsValid())
	require.False(t, ActivityType("running").IsValid(), "categories are case sensitive")
}

func TestValidateActivity(t *testing.T) {
	valid := Activity{
		UserID:         "user-1",
		Type:           ActivitySwimming,
		Duration:       25,
		CaloriesBurned: 0,
		StartTime:      time.Now(),
	}
	require.NoError(t, ValidateActivity(valid))

	tests := []struct {
		name   string
		mutate func(*Activity)
	}{
		{"missing user", func(a *Activity) { a.UserID = "" }},
		{"unknown type", func(a *Activity) { a.Type = "PARKOUR" }},
		{"zero duration", func(a *Activity) { a.Duration = 0 }},
		{"negative duration", func(a *Activity) { a.Duration = -5 }},
		{"negative calories", func(a *Activity) { a.CaloriesBurned = -1 }},
		{"missing start time", func(a *Activity) { a.StartTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := valid
			tt.mutate(&activity)
			require.ErrorIs(t, ValidateActivity(activity), ErrInvalidActivity)
		})
	}
}
