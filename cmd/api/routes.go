package main

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/auth"

	orderH "github.com/marketgo/storefront-service/internal/order/handler"
	prodH "github.com/marketgo/storefront-service/internal/product/handler"
	userH "github.com/marketgo/storefront-service/internal/user/handler"
	wishH "github.com/marketgo/storefront-service/internal/wishlist/handler"
)

func registerRoutes(
	app *fiber.App,
	verifier auth.Verifier,
	roles auth.RoleSource,
	log *zap.Logger,
	users *userH.UserHandler,
	products *prodH.ProductHandler,
	orders *orderH.OrderHandler,
	wishlists *wishH.WishlistHandler,
) {
	requireAuth := auth.RequireAuth(verifier, log)
	requireAdmin := auth.RequireAdmin(roles, log)

	api := app.Group("/api")

	// Products: reads are public, mutations are admin-only.
	api.Get("/products", products.List)
	api.Get("/products/:id", products.Get)
	api.Post("/products", requireAuth, requireAdmin, products.Create)
	api.Put("/products/:id", requireAuth, requireAdmin, products.Update)
	api.Delete("/products/:id", requireAuth, requireAdmin, products.Delete)

	// Users
	api.Post("/users/sync", requireAuth, users.Sync)

	// Orders: creation belongs to the authenticated owner, everything else
	// goes through the admin gate. The stats route is registered before
	// ":id" so "stats" is never parsed as an order id.
	api.Get("/orders/stats/summary", requireAuth, requireAdmin, orders.Stats)
	api.Post("/orders", requireAuth, orders.Create)
	api.Get("/orders", requireAuth, requireAdmin, orders.List)
	api.Get("/orders/:id", requireAuth, requireAdmin, orders.Get)
	api.Put("/orders/:id/status", requireAuth, requireAdmin, orders.UpdateStatus)
	api.Delete("/orders/:id", requireAuth, requireAdmin, orders.Delete)

	// Wishlist: everything is scoped to the authenticated owner.
	wish := api.Group("/wishlist", requireAuth)
	wish.Post("/", wishlists.Add)
	wish.Get("/", wishlists.List)
	wish.Get("/check/:productId", wishlists.Check)
	wish.Put("/:id", wishlists.UpdateNote)
	wish.Delete("/product/:productId", wishlists.DeleteByProduct)
	wish.Delete("/:id", wishlists.Delete)
}
