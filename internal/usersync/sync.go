// Package usersync keeps the user registry in step with identity-provider
// tokens passing through the gateway. The HTTP filter itself lives in the
// gateway; this package is the core it calls.
package usersync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thesaddamsyed/fitness-microservices/internal/observability"
)

// User is the registry projection of an identity-provider account.
type User struct {
	KeycloakID string
	Email      string
	FirstName  string
	LastName   string
}

// UserStore registers users. Upsert must be atomic: insert-if-absent with no
// separate existence check.
type UserStore interface {
	Upsert(ctx context.Context, user User) (created bool, err error)
}

var (
	// ErrMissingToken is returned when no bearer token accompanies the request.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken wraps token decoding failures.
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Syncer resolves the effective user id for a request and registers unseen
// users in one conflict-ignoring write.
type Syncer struct {
	store UserStore
}

// NewSyncer constructs a Syncer.
func NewSyncer(store UserStore) *Syncer {
	return &Syncer{store: store}
}

// EnsureUser extracts identity claims from the token, upserts the user, and
// returns the user id the request should carry downstream. headerUserID, when
// set, wins over the token subject.
func (s *Syncer) EnsureUser(ctx context.Context, token, headerUserID string) (string, error) {
	user, err := ClaimsFromToken(token)
	if err != nil {
		return "", err
	}

	userID := headerUserID
	if userID == "" {
		userID = user.KeycloakID
	}

	if _, err := s.store.Upsert(ctx, user); err != nil {
		return "", fmt.Errorf("register user %s: %w", user.KeycloakID, err)
	}
	observability.RecordUserSynced(time.Now().UTC())

	return userID, nil
}

// ClaimsFromToken decodes identity claims from an already-verified bearer
// token. Signature verification happened upstream at the gateway's security
// layer, so the payload is only decoded here, not re-verified.
func ClaimsFromToken(token string) (User, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return User{}, ErrMissingToken
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return User{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	firstName, _ := claims["given_name"].(string)
	lastName, _ := claims["family_name"].(string)

	return User{
		KeycloakID: subject,
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
	}, nil
}
