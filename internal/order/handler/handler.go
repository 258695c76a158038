package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/auth"
	"github.com/marketgo/storefront-service/internal/order"
	"github.com/marketgo/storefront-service/internal/order/dto"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

// Create stamps the verified principal as owner; the owner is immutable
// after this point. The total is taken from the client as-is.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return httperr.Respond(c, h.logger, httperr.Wrap(httperr.ErrInvalidInput, "invalid request body"))
	}

	o, err := h.uc.CreateOrder(c.UserContext(), auth.PrincipalEmail(c), &input)
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.ListOrders(c.UserContext())
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	o, err := h.uc.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(o)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var input dto.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return httperr.Respond(c, h.logger, httperr.Wrap(httperr.ErrInvalidInput, "invalid request body"))
	}

	o, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), input.Status)
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(o)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.UserContext(), c.Params("id")); err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "order deleted"})
}

func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(stats)
}
