package usersync

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

type stubUserStore struct {
	upserts []User
	created bool
	err     error
}

func (s *stubUserStore) Upsert(_ context.Context, user User) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.upserts = append(s.upserts, user)
	return s.created, nil
}

func TestClaimsFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":         "kc-123",
		"email":       "ada@example.com",
		"given_name":  "Ada",
		"family_name": "Lovelace",
	})

	user, err := ClaimsFromToken("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, User{
		KeycloakID: "kc-123",
		Email:      "ada@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
	}, user)
}

func TestClaimsFromTokenErrors(t *testing.T) {
	_, err := ClaimsFromToken("")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = ClaimsFromToken("Bearer not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	missingSub := signedToken(t, jwt.MapClaims{"email": "x@example.com"})
	_, err = ClaimsFromToken(missingSub)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnsureUserUpsertsOnce(t *testing.T) {
	store := &stubUserStore{created: true}
	syncer := NewSyncer(store)

	token := signedToken(t, jwt.MapClaims{"sub": "kc-9", "email": "kc9@example.com"})

	userID, err := syncer.EnsureUser(context.Background(), token, "")
	require.NoError(t, err)
	require.Equal(t, "kc-9", userID)
	require.Len(t, store.upserts, 1)

	// A second request for the same identity issues the same single upsert;
	// the store's conflict-ignore makes it a no-op.
	store.created = false
	userID, err = syncer.EnsureUser(context.Background(), token, "")
	require.NoError(t, err)
	require.Equal(t, "kc-9", userID)
	require.Len(t, store.upserts, 2)
}

func TestEnsureUserPrefersHeaderUserID(t *testing.T) {
	store := &stubUserStore{}
	syncer := NewSyncer(store)

	token := signedToken(t, jwt.MapClaims{"sub": "kc-9"})

	userID, err := syncer.EnsureUser(context.Background(), token, "header-user")
	require.NoError(t, err)
	require.Equal(t, "header-user", userID)
}

func TestEnsureUserPropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("db down")
	syncer := NewSyncer(&stubUserStore{err: storeErr})

	token := signedToken(t, jwt.MapClaims{"sub": "kc-9"})

	_, err := syncer.EnsureUser(context.Background(), token, "")
	require.ErrorIs(t, err, storeErr)
}
