package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/config"
	"github.com/marketgo/storefront-service/internal/auth"
	"github.com/marketgo/storefront-service/internal/database"
	"github.com/marketgo/storefront-service/pkg/httperr"
	"github.com/marketgo/storefront-service/pkg/logger"

	orderH "github.com/marketgo/storefront-service/internal/order/handler"
	orderRepoPkg "github.com/marketgo/storefront-service/internal/order/repository"
	orderUCPkg "github.com/marketgo/storefront-service/internal/order/usecase"

	prodH "github.com/marketgo/storefront-service/internal/product/handler"
	prodRepoPkg "github.com/marketgo/storefront-service/internal/product/repository"
	prodUCPkg "github.com/marketgo/storefront-service/internal/product/usecase"

	userH "github.com/marketgo/storefront-service/internal/user/handler"
	userRepoPkg "github.com/marketgo/storefront-service/internal/user/repository"
	userUCPkg "github.com/marketgo/storefront-service/internal/user/usecase"

	wishH "github.com/marketgo/storefront-service/internal/wishlist/handler"
	wishRepoPkg "github.com/marketgo/storefront-service/internal/wishlist/repository"
	wishUCPkg "github.com/marketgo/storefront-service/internal/wishlist/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.New(cfg.Logger)
	defer appLogger.Sync()

	// 3. Connect to Database (bounded retry, fatal on exhaustion)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := database.Connect(ctx, cfg.Mongo, appLogger)
	if err != nil {
		appLogger.Fatal("could not connect to mongo", zap.Error(err))
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	db := client.Database(cfg.Mongo.Database)
	appLogger.Info("connected to mongo", zap.String("database", cfg.Mongo.Database))

	if err := database.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatal("could not ensure indexes", zap.Error(err))
	}

	// 4. Initialize Repositories
	userRepo := userRepoPkg.NewMongoRepository(db)
	prodRepo := prodRepoPkg.NewMongoRepository(db)
	orderRepo := orderRepoPkg.NewMongoRepository(db)
	wishRepo := wishRepoPkg.NewMongoRepository(db)

	// 5. Initialize UseCases
	userUC := userUCPkg.NewUserUseCase(userRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, appLogger)
	wishUC := wishUCPkg.NewWishlistUseCase(wishRepo, prodRepo, appLogger)

	// 6. Initialize Handlers
	userHandler := userH.NewUserHandler(userUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	orderHandler := orderH.NewOrderHandler(orderUC, appLogger)
	wishHandler := wishH.NewWishlistHandler(wishUC, appLogger)

	// 7. HTTP server
	app := fiber.New(fiber.Config{
		AppName: "storefront-service",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(httperr.Response{Message: fe.Message})
			}
			return httperr.Respond(c, appLogger, err)
		},
	})
	app.Use(recover.New())
	app.Use(requestLogger(appLogger))

	verifier := auth.NewJWTVerifier(cfg.Auth)
	registerRoutes(app, verifier, userRepo, appLogger,
		userHandler, prodHandler, orderHandler, wishHandler)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	go func() {
		appLogger.Info("starting http server", zap.String("port", port))
		if err := app.Listen(port); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
