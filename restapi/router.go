// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/config"
	"github.com/charis-foundation/board-backend/recordstore"
	"github.com/charis-foundation/board-backend/restapi/modules/auth"
	"github.com/charis-foundation/board-backend/restapi/modules/dashboard"
	"github.com/charis-foundation/board-backend/restapi/modules/documents"
	"github.com/charis-foundation/board-backend/restapi/modules/grants"
	"github.com/charis-foundation/board-backend/restapi/modules/meetings"
	"github.com/charis-foundation/board-backend/restapi/modules/members"
	"github.com/charis-foundation/board-backend/restapi/modules/partners"
	"github.com/charis-foundation/board-backend/restapi/modules/resource"
)

// SetupRoutes configures the REST routes and the GraphQL endpoint. Every
// route sits behind the session middleware: a request without a valid session
// identity is rejected before any record-store access.
func SetupRoutes(app *fiber.App, store *recordstore.Client, cfg *config.Config,
	svc *dashboard.Service, schema graphql.Schema, logger *zap.Logger) {

	api := app.Group("/api", auth.RequireSession(cfg.SessionSecret))

	// Dashboard
	api.Get("/dashboard/stats", dashboard.GetStats(svc))
	api.Post("/graphql", GraphQLHandler(schema))

	// Entity CRUD
	mount(api, "/grants", grants.NewHandler(store, cfg.Tables.Grants, logger))
	mount(api, "/partners", partners.NewHandler(store, cfg.Tables.Partners, logger))
	mount(api, "/meetings", meetings.NewHandler(store, cfg.Tables.Meetings, logger))
	mount(api, "/documents", documents.NewHandler(store, cfg.Tables.Documents, logger))
	mount(api, "/members", members.NewHandler(store, cfg.Tables.BoardMembers, logger))

	logger.Info("API routes initialized successfully")
}

func mount(api fiber.Router, path string, h *resource.Handler) {
	group := api.Group(path)
	group.Get("/", h.List())
	group.Post("/", h.Create())
	group.Get("/:id", h.Get())
	group.Put("/:id", h.Update())
	group.Delete("/:id", h.Delete())
}
