package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marketgo/storefront-service/config"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

// Verifier resolves a bearer token to a verified principal email. Tokens are
// minted by the identity provider; this service only validates them.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTVerifier struct {
	secret []byte
	issuer string
}

func NewJWTVerifier(cfg config.AuthConfig) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

func (v *JWTVerifier) VerifyToken(_ context.Context, tokenString string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", httperr.Wrap(httperr.ErrUnauthenticated, "token expired")
		}
		return "", httperr.Wrap(httperr.ErrUnauthenticated, "invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", httperr.Wrap(httperr.ErrUnauthenticated, "invalid token")
	}
	return claims.Email, nil
}
