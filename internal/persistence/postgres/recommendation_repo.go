// Package postgres provides pgx-backed adapters for the pipeline's stores.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
)

// RecommendationRepository persists recommendations with an idempotency
// guard: the unique constraint on activity_id makes at-least-once
// redeliveries harmless.
type RecommendationRepository struct {
	pool *pgxpool.Pool
}

// NewRecommendationRepository constructs a RecommendationRepository.
func NewRecommendationRepository(pool *pgxpool.Pool) *RecommendationRepository {
	return &RecommendationRepository{pool: pool}
}

// Save inserts the recommendation. A conflicting activity_id returns
// domain.ErrRecommendationExists without modifying the stored row.
func (r *RecommendationRepository) Save(ctx context.Context, rec domain.Recommendation) error {
	const stmt = `INSERT INTO recommendations
        (recommendation_id, activity_id, user_id, activity_type, analysis, improvements, suggestions, safety_measures, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (activity_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, stmt,
		rec.ID,
		rec.ActivityID,
		rec.UserID,
		string(rec.ActivityType),
		rec.Analysis,
		rec.Improvements,
		rec.Suggestions,
		rec.SafetyMeasures,
		rec.CreatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecommendationExists
	}
	return nil
}

const selectColumns = `recommendation_id, activity_id, user_id, activity_type, analysis, improvements, suggestions, safety_measures, created_at`

// ListByUser returns all recommendations for a user, newest first.
func (r *RecommendationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	const query = `SELECT ` + selectColumns + `
        FROM recommendations WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Recommendation, 0)
	for rows.Next() {
		rec, scanErr := scanRecommendation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByActivity returns the recommendation for one activity, if any.
func (r *RecommendationRepository) GetByActivity(ctx context.Context, activityID string) (*domain.Recommendation, error) {
	const query = `SELECT ` + selectColumns + `
        FROM recommendations WHERE activity_id=$1`

	row := r.pool.QueryRow(ctx, query, activityID)
	rec, err := scanRecommendation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecommendationNotFound
		}
		return nil, err
	}
	return &rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(row rowScanner) (domain.Recommendation, error) {
	var rec domain.Recommendation
	var activityType string
	err := row.Scan(
		&rec.ID,
		&rec.ActivityID,
		&rec.UserID,
		&activityType,
		&rec.Analysis,
		&rec.Improvements,
		&rec.Suggestions,
		&rec.SafetyMeasures,
		&rec.CreatedAt,
	)
	rec.ActivityType = domain.ActivityType(activityType)
	return rec, err
}
