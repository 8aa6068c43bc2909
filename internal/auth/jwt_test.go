package auth

import (
	"testing"
	"time"

	"food_order/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Username: "kovacs",
		Email:    "kovacs@example.hu",
		Role:     string(models.RoleUser),
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	signed, err := tokens.Generate(testUser())
	require.NoError(t, err)

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "kovacs", claims.Username)
	assert.Equal(t, "kovacs@example.hu", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.False(t, claims.IsAdmin())
}

func TestExpiredTokenRejected(t *testing.T) {
	tokens := NewTokenManager("test-secret", -time.Minute)

	signed, err := tokens.Generate(testUser())
	require.NoError(t, err)

	_, err = tokens.Validate(signed)
	require.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("another-secret", time.Hour)

	signed, err := tokens.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Validate(signed)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	_, err := tokens.Validate("not.a.token")
	require.Error(t, err)
}
