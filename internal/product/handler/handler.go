package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/product"
	"github.com/marketgo/storefront-service/internal/product/dto"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

// List is public. ?category=All (or none) returns everything; ?limit caps
// the result count.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filters := &dto.ProductFilters{Category: c.Query("category")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return httperr.Respond(c, h.logger, httperr.Wrap(httperr.ErrInvalidInput, "limit must be a non-negative integer"))
		}
		filters.Limit = limit
	}

	products, err := h.uc.ListProducts(c.UserContext(), filters)
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return httperr.Respond(c, h.logger, httperr.Wrap(httperr.ErrInvalidInput, "invalid request body"))
	}

	p, err := h.uc.CreateProduct(c.UserContext(), &input)
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return httperr.Respond(c, h.logger, httperr.Wrap(httperr.ErrInvalidInput, "invalid request body"))
	}
	input.ID = c.Params("id")

	p, err := h.uc.UpdateProduct(c.UserContext(), &input)
	if err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return httperr.Respond(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}
