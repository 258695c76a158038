package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/auth"
	"github.com/marketgo/storefront-service/internal/user"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type UserHandler struct {
	uc     user.UseCase
	logger *zap.Logger
}

func NewUserHandler(uc user.UseCase, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: log}
}

// Sync is the idempotent upsert-by-email entry point. The request body is
// ignored; the principal comes from the verified token.
func (h *UserHandler) Sync(c *fiber.Ctx) error {
	u, err := h.uc.Sync(c.UserContext(), auth.PrincipalEmail(c))
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(u)
}
