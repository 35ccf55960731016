package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thesaddamsyed/fitness-microservices/internal/usersync"
)

// UserRepository backs the gateway's user sync with a conflict-ignoring
// upsert, so concurrent first requests for the same identity cannot race a
// check-then-insert window.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Upsert registers the user if absent. It reports whether a new row was
// created; an existing row is left untouched.
func (r *UserRepository) Upsert(ctx context.Context, user usersync.User) (bool, error) {
	const stmt = `INSERT INTO users (keycloak_id, email, first_name, last_name, created_at, updated_at)
        VALUES ($1,$2,$3,$4,NOW(),NOW())
        ON CONFLICT (keycloak_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, stmt, user.KeycloakID, user.Email, user.FirstName, user.LastName)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
