package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"internhub_backend/internal/models"
)

// Claims is the access-token payload. Together with the auth middleware it is
// the session-provider contract: handlers see {id, role, premium, verified}.
type Claims struct {
	UserID   string          `json:"user_id"`
	Role     models.UserRole `json:"role"`
	Premium  bool            `json:"premium"`
	Verified bool            `json:"verified"`
	jwt.RegisteredClaims
}

var ErrTokenInvalid = errors.New("invalid token")

// TokenIssuer signs and parses access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttlMinutes int) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// Generate issues a signed access token for the user.
func (i *TokenIssuer) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Role:     user.Role,
		Premium:  user.HasActivePremium(now),
		Verified: user.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates the token signature and expiry and returns the claims.
func (i *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
