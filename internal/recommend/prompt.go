// Package recommend turns activities into AI coaching recommendations.
package recommend

import (
	"encoding/json"
	"fmt"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
)

// promptTemplate instructs the provider to answer in a fixed JSON shape. The
// schema is documentation-by-example; the provider is not guaranteed to
// honor it, which is why the parser treats every reply as untrusted.
const promptTemplate = `Analyze this fitness activity and provide detailed recommendations in the following format

{
  "analysis": {
    "overall": "Overall analysis here",
    "pace": "Pace analysis here",
    "heartRate": "Heart rate analysis here",
    "caloriesBurned": "Calories burned analysis here"
  },
  "improvements": [
    {
      "area": "Area name",
      "recommendation": "Detailed recommendation"
    }
  ],
  "suggestions": [
    {
      "workout": "Workout name",
      "description": "Detailed workout description"
    }
  ],
  "safety": [
    "Safety point 1",
    "Safety point 2"
  ]
}

Analyze this activity:
Activity Type: %s
Duration: %d minutes
Calories Burned: %d
Additional Metrics: %s

Provide detailed analysis focusing on performance, improvements, next workout suggestions, and safety guidelines.
Ensure the response follows the EXACT JSON format shown above.`

// BuildPrompt renders the provider prompt for one activity. It never fails:
// absent numbers render as 0 and absent metrics as an empty object.
func BuildPrompt(activity domain.Activity) string {
	metrics := "{}"
	if len(activity.AdditionalMetrics) > 0 {
		if encoded, err := json.Marshal(activity.AdditionalMetrics); err == nil {
			metrics = string(encoded)
		}
	}
	return fmt.Sprintf(promptTemplate, activity.Type, activity.Duration, activity.CaloriesBurned, metrics)
}
