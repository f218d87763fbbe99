package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/services"
)

// Deps are the services the API routes read from.
type Deps struct {
	Query     *services.QueryService
	Trends    *services.TrendsService
	Sequencer *services.Sequencer
	Metrics   *observability.Metrics
}

// RegisterRoutes mounts every API route on api, the router for /api.
func RegisterRoutes(api fiber.Router, d Deps) {
	appsHandler := &AppsHandler{Query: d.Query}
	usersHandler := &UsersHandler{Query: d.Query}
	trendsHandler := &TrendsHandler{Trends: d.Trends, Sequencer: d.Sequencer, Metrics: d.Metrics}

	api.Get("/apps", appsHandler.ListApps)
	api.Get("/apps/:id/logs", appsHandler.ListAppLogs)
	api.Get("/apps/:id", appsHandler.GetApp)
	api.Get("/logs", appsHandler.ListLogs)
	api.Get("/status/summary", appsHandler.StatusSummary)

	api.Get("/users", usersHandler.ListUsers)
	api.Get("/users/:id/apps", usersHandler.ListUserApps)
	api.Get("/users/:id/stats", usersHandler.UserStats)
	api.Get("/users/:id/status-counts", usersHandler.UserStatusCounts)
	api.Get("/users/:id", usersHandler.GetUser)

	api.Get("/trends", trendsHandler.GetAggregate)
	api.Get("/trends/data", trendsHandler.GetData)
	api.Get("/trends/summary", trendsHandler.GetSummary)
	api.Get("/trends/ranges", trendsHandler.GetRanges)
	api.Get("/trends/statuses", trendsHandler.GetStatuses)
	api.Post("/trends/query", trendsHandler.PostQuery)

	api.Get("/taxonomy", GetTaxonomy)
}
