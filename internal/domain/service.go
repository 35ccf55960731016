package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityRepository captures persistence operations for activities. The
// concrete store lives with the activity CRUD service, outside this module.
type ActivityRepository interface {
	Create(ctx context.Context, activity Activity) error
}

// EventPublisher emits an activity-created event after the store write.
type EventPublisher interface {
	PublishActivityCreated(ctx context.Context, activity Activity) error
}

// Service orchestrates the producer side of the pipeline: validate, persist,
// then publish. The write and its downstream notification are reported to the
// caller as one logical unit.
type Service struct {
	repo      ActivityRepository
	publisher EventPublisher
}

// NewService constructs a Service.
func NewService(repo ActivityRepository, publisher EventPublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// CreateActivityInput captures the payload from the API layer.
type CreateActivityInput struct {
	UserID            string
	Type              ActivityType
	Duration          int
	CaloriesBurned    int
	StartTime         time.Time
	AdditionalMetrics map[string]any
}

// CreateActivity persists the activity and publishes the created event.
// Publish happens only after the store write succeeds; a publish failure is
// surfaced to the caller as a creation failure.
func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*Activity, error) {
	now := time.Now().UTC()
	activity := Activity{
		ID:                uuid.NewString(),
		UserID:            input.UserID,
		Type:              input.Type,
		Duration:          input.Duration,
		CaloriesBurned:    input.CaloriesBurned,
		StartTime:         input.StartTime.UTC(),
		AdditionalMetrics: input.AdditionalMetrics,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := ValidateActivity(activity); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("persist activity: %w", err)
	}

	if err := s.publisher.PublishActivityCreated(ctx, activity); err != nil {
		return nil, fmt.Errorf("activity %s stored but event publish failed: %w", activity.ID, err)
	}

	return &activity, nil
}
