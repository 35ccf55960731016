package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
)

func TestBuildPromptIncludesActivityFields(t *testing.T) {
	activity := domain.Activity{
		Type:           domain.ActivityCycling,
		Duration:       60,
		CaloriesBurned: 550,
		AdditionalMetrics: map[string]any{
			"distance_km": 25.4,
		},
	}

	prompt := BuildPrompt(activity)

	require.Contains(t, prompt, "Activity Type: CYCLING")
	require.Contains(t, prompt, "Duration: 60 minutes")
	require.Contains(t, prompt, "Calories Burned: 550")
	require.Contains(t, prompt, `"distance_km":25.4`)

	// The expected response schema is embedded verbatim.
	require.Contains(t, prompt, `"analysis"`)
	require.Contains(t, prompt, `"improvements"`)
	require.Contains(t, prompt, `"suggestions"`)
	require.Contains(t, prompt, `"safety"`)
	require.Contains(t, prompt, "EXACT JSON format")
}

func TestBuildPromptToleratesZeroValues(t *testing.T) {
	prompt := BuildPrompt(domain.Activity{Type: domain.ActivityYoga})

	require.Contains(t, prompt, "Duration: 0 minutes")
	require.Contains(t, prompt, "Calories Burned: 0")
	require.Contains(t, prompt, "Additional Metrics: {}")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	activity := domain.Activity{Type: domain.ActivityHIIT, Duration: 20, CaloriesBurned: 300}
	require.Equal(t, BuildPrompt(activity), BuildPrompt(activity))
}
