package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/marketgo/storefront-service/config"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

func mintToken(t *testing.T, secret, issuer, email string, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	cfg := config.AuthConfig{JWTSecret: "test-secret", Issuer: "storefront"}
	v := NewJWTVerifier(cfg)

	t.Run("valid token yields email", func(t *testing.T) {
		token := mintToken(t, "test-secret", "storefront", "a@example.com", time.Hour)
		email, err := v.VerifyToken(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "a@example.com", email)
	})

	t.Run("wrong secret -> unauthenticated", func(t *testing.T) {
		token := mintToken(t, "other-secret", "storefront", "a@example.com", time.Hour)
		_, err := v.VerifyToken(ctx, token)
		require.ErrorIs(t, err, httperr.ErrUnauthenticated)
	})

	t.Run("expired token -> unauthenticated", func(t *testing.T) {
		token := mintToken(t, "test-secret", "storefront", "a@example.com", -time.Minute)
		_, err := v.VerifyToken(ctx, token)
		require.ErrorIs(t, err, httperr.ErrUnauthenticated)
	})

	t.Run("wrong issuer -> unauthenticated", func(t *testing.T) {
		token := mintToken(t, "test-secret", "someone-else", "a@example.com", time.Hour)
		_, err := v.VerifyToken(ctx, token)
		require.ErrorIs(t, err, httperr.ErrUnauthenticated)
	})

	t.Run("missing email claim -> unauthenticated", func(t *testing.T) {
		token := mintToken(t, "test-secret", "storefront", "", time.Hour)
		_, err := v.VerifyToken(ctx, token)
		require.ErrorIs(t, err, httperr.ErrUnauthenticated)
	})

	t.Run("garbage -> unauthenticated", func(t *testing.T) {
		_, err := v.VerifyToken(ctx, "not.a.token")
		require.ErrorIs(t, err, httperr.ErrUnauthenticated)
	})
}
