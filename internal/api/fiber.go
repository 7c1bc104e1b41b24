package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/config"
	gqlschema "github.com/charis-foundation/board-backend/graphql"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi"
	"github.com/charis-foundation/board-backend/restapi/modules/dashboard"
)

// NewFiberApp creates and configures a Fiber app with the REST and GraphQL routes
func NewFiberApp(cfg *config.Config, store *recordstore.Client, zlog *zap.Logger) *fiber.App {
	svc := dashboard.NewService(store, cfg.Tables, zlog)

	schema, err := gqlschema.CreateSchema(svc)
	if err != nil {
		zlog.Fatal("Failed to create GraphQL schema", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:     "board-backend API v1.0",
		ReadTimeout: 30 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		AllowMethods:     "GET, POST, HEAD, PUT, DELETE, PATCH, OPTIONS",
	}))
	app.Use(logger.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	restapi.SetupRoutes(app, store, cfg, svc, schema, zlog)

	return app
}
