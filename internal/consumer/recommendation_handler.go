package consumer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
	"github.com/thesaddamsyed/fitness-microservices/internal/events"
	"github.com/thesaddamsyed/fitness-microservices/internal/observability"
)

// Generator produces a recommendation for one activity.
type Generator interface {
	Generate(ctx context.Context, activity domain.Activity) (*domain.Recommendation, error)
}

// RecommendationHandler turns delivered envelopes into stored
// recommendations. Generation failures are returned so the envelope is
// redelivered; a duplicate store write counts as success because the
// recommendation is already durable.
type RecommendationHandler struct {
	generator Generator
	repo      domain.RecommendationRepository
	logger    *log.Logger
}

// NewRecommendationHandler constructs the handler.
func NewRecommendationHandler(generator Generator, repo domain.RecommendationRepository) *RecommendationHandler {
	return &RecommendationHandler{
		generator: generator,
		repo:      repo,
		logger:    log.New(log.Writer(), "[recommendation] ", log.LstdFlags),
	}
}

// Handle generates and persists the recommendation for one envelope.
func (h *RecommendationHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != "" && msg.EventType != events.TypeActivityCreated {
		return nil
	}

	activity := msg.Envelope.ToActivity()

	rec, err := h.generator.Generate(ctx, activity)
	if err != nil {
		return fmt.Errorf("generate recommendation: %w", err)
	}

	if err := h.repo.Save(ctx, *rec); err != nil {
		if errors.Is(err, domain.ErrRecommendationExists) {
			recordDuplicate(msg.Topic)
			h.logger.Printf("recommendation for activity %s already stored, acknowledging redelivery", activity.ID)
			return nil
		}
		return fmt.Errorf("persist recommendation: %w", err)
	}

	observability.RecordRecommendationStored(rec.CreatedAt)
	return nil
}
