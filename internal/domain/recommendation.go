package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrRecommendationExists indicates a recommendation was already stored
	// for the activity. Redeliveries hitting this are treated as success.
	ErrRecommendationExists = errors.New("recommendation already exists for activity")
	// ErrRecommendationNotFound is returned when a lookup finds nothing.
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// Recommendation is the AI-derived feedback artifact for one Activity.
// Improvements, Suggestions, and SafetyMeasures are always non-empty; when
// the provider yields nothing for a category a sentinel string fills it.
type Recommendation struct {
	ID             string
	ActivityID     string
	UserID         string
	ActivityType   ActivityType
	Analysis       string
	Improvements   []string
	Suggestions    []string
	SafetyMeasures []string
	CreatedAt      time.Time
}

// RecommendationRepository captures persistence operations for recommendations.
type RecommendationRepository interface {
	Save(ctx context.Context, rec Recommendation) error
	ListByUser(ctx context.Context, userID string) ([]Recommendation, error)
	GetByActivity(ctx context.Context, activityID string) (*Recommendation, error)
}
