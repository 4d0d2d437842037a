package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/internal/models"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	exp := time.Now().Add(24 * time.Hour)
	user := &models.User{
		BaseModel:        models.BaseModel{ID: "user-1"},
		Role:             models.UserRoleIndustry,
		IsPremium:        true,
		PremiumExpiresAt: &exp,
		IsVerified:       true,
	}

	token, err := issuer.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleIndustry, claims.Role)
	assert.True(t, claims.Premium)
	assert.True(t, claims.Verified)
}

func TestTokenIssuer_ExpiredPremiumNotInClaims(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	exp := time.Now().Add(-time.Hour)
	user := &models.User{
		BaseModel:        models.BaseModel{ID: "user-2"},
		Role:             models.UserRoleCandidate,
		IsPremium:        true,
		PremiumExpiresAt: &exp,
	}

	token, err := issuer.Generate(user)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.False(t, claims.Premium)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", 60)
	other := NewTokenIssuer("secret-b", 60)

	token, err := issuer.Generate(&models.User{BaseModel: models.BaseModel{ID: "u"}, Role: models.UserRoleAdmin})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
