package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/auth"
	"github.com/marketgo/storefront-service/internal/wishlist"
	"github.com/marketgo/storefront-service/internal/wishlist/dto"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type WishlistHandler struct {
	uc     wishlist.UseCase
	logger *zap.Logger
}

func NewWishlistHandler(uc wishlist.UseCase, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, logger: log}
}

func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	var input dto.AddInput
	if err := c.BodyParser(&input); err != nil {
		return httperr.Respond(c, h.logger, httperr.Wrap(httperr.ErrInvalidInput, "invalid request body"))
	}

	item, err := h.uc.Add(c.UserContext(), auth.PrincipalEmail(c), &input)
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *WishlistHandler) Check(c *fiber.Ctx) error {
	result, err := h.uc.Check(c.UserContext(), auth.PrincipalEmail(c), c.Params("productId"))
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(result)
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.List(c.UserContext(), auth.PrincipalEmail(c))
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(entries)
}

func (h *WishlistHandler) UpdateNote(c *fiber.Ctx) error {
	var input dto.UpdateNoteInput
	if err := c.BodyParser(&input); err != nil {
		return httperr.Respond(c, h.logger, httperr.Wrap(httperr.ErrInvalidInput, "invalid request body"))
	}

	item, err := h.uc.UpdateNote(c.UserContext(), auth.PrincipalEmail(c), c.Params("id"), &input)
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(item)
}

func (h *WishlistHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteByID(c.UserContext(), auth.PrincipalEmail(c), c.Params("id")); err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "wishlist entry deleted"})
}

func (h *WishlistHandler) DeleteByProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteByProduct(c.UserContext(), auth.PrincipalEmail(c), c.Params("productId")); err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "wishlist entry deleted"})
}
