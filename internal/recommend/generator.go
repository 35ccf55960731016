package recommend

import (
	"context"
	"fmt"

	"github.com/thesaddamsyed/fitness-microservices/internal/ai"
	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
)

// Generator orchestrates prompt building, the provider call, and response
// parsing for one activity.
type Generator struct {
	client ai.Client
}

// NewGenerator constructs a Generator.
func NewGenerator(client ai.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces the recommendation for an activity. A failed provider
// call is propagated so the consumer's retry policy governs it; a successful
// call with unusable text is absorbed into the fallback recommendation.
func (g *Generator) Generate(ctx context.Context, activity domain.Activity) (*domain.Recommendation, error) {
	prompt := BuildPrompt(activity)

	raw, err := g.client.GetAnswer(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai provider call for activity %s: %w", activity.ID, err)
	}

	rec := Parse(activity, raw)
	return &rec, nil
}
