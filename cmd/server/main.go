package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/localnerve/supportdash/internal/bootstrap"
	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/database"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/services"

	_ "github.com/localnerve/supportdash/docs/api" // Swagger docs
)

// @title SupportDash API
// @version 1.0.0
// @description Read-only analytics over app chat analysis logs: apps, users, status summaries and sentiment trends
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/supportdash
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	// Load the snapshot every request reads from
	snap, db, err := bootstrap.LoadSnapshot(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to load snapshot", "source", cfg.DataSource, "error", err)
	}
	if db != nil {
		defer database.Close(db)
	}
	zlog.Info(bootstrap.Describe(snap))

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// Optional trends cache
	var cache services.ReportCache
	if cfg.RedisURL != "" {
		client, err := services.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			zlog.Warn("trends cache disabled", "error", err)
		} else {
			defer client.Close()
			cache = services.NewRedisCache(client, cfg.CacheTTL, metrics)
			zlog.Info("trends cache enabled", "ttl", cfg.CacheTTL.String())
		}
	}

	svc := bootstrap.NewServices(cfg, snap, zlog, metrics, cache)

	app := newApp(server{
		cfg:      cfg,
		snap:     snap,
		db:       db,
		log:      zlog,
		services: svc,
		metrics:  metrics,
		registry: prometheus.DefaultRegisterer,
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		zlog.Info("gracefully shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	// Start server
	port := cfg.Port
	zlog.Info("starting server", "port", port, "dataSource", cfg.DataSource, "latency", cfg.SimulatedLatency.String())
	if err := app.Listen(":" + port); err != nil {
		zlog.Fatal("failed to start server", "error", err)
	}

	zlog.Info("server stopped")
}
