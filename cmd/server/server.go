package main

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/localnerve/supportdash/internal/bootstrap"
	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/handlers"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/middleware"
	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/store"
	"github.com/localnerve/supportdash/internal/utils"
)

// server is what the HTTP app is assembled from. db is nil for the embedded snapshot.
type server struct {
	cfg      *config.Config
	snap     *store.Snapshot
	db       *gorm.DB
	log      *logger.Logger
	services bootstrap.Services
	metrics  *observability.Metrics
	registry prometheus.Registerer
}

func newApp(s server) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: s.cfg.IsProduction(),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestId} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())

	// Prometheus metrics
	prom := fiberprometheus.NewWithRegistry(s.registry, "supportdash", "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), s.cfg, s.snap, s.db, s.log)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return utils.SuccessResponse(c, result, status)
	})

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	handlers.RegisterRoutes(api, handlers.Deps{
		Query:     s.services.Query,
		Trends:    s.services.Trends,
		Sequencer: s.services.Sequencer,
		Metrics:   s.metrics,
	})

	// 404 handler
	app.Use(handlers.NotFound)

	return app
}
