package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

const principalKey = "principal_email"

// RoleSource looks up the stored role for a principal. Implemented by the
// user repository; kept as a local interface so the middleware does not
// depend on the user package.
type RoleSource interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// PrincipalEmail returns the verified email set by RequireAuth, or "" when
// the route ran without it.
func PrincipalEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(principalKey).(string)
	return email
}

// RequireAuth verifies the Bearer token and stores the principal email in
// the request locals. Every request is verified independently; no session
// state is kept.
func RequireAuth(v Verifier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return httperr.Respond(c, log, httperr.Wrap(httperr.ErrUnauthenticated, "missing bearer token"))
		}

		token := strings.TrimPrefix(header, "Bearer ")
		email, err := v.VerifyToken(c.UserContext(), token)
		if err != nil {
			return httperr.Respond(c, log, err)
		}

		c.Locals(principalKey, email)
		return c.Next()
	}
}

// RequireAdmin is the role gate: it resolves the principal's stored role and
// rejects with 403 unless it is admin. Must run after RequireAuth.
func RequireAdmin(roles RoleSource, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := PrincipalEmail(c)
		if email == "" {
			return httperr.Respond(c, log, httperr.Wrap(httperr.ErrUnauthenticated, "missing bearer token"))
		}

		user, err := roles.GetByEmail(c.UserContext(), email)
		if err != nil {
			return httperr.Respond(c, log, err)
		}
		if user == nil || !user.IsAdmin() {
			return httperr.Respond(c, log, httperr.Wrap(httperr.ErrForbidden, "admin access required"))
		}
		return c.Next()
	}
}
