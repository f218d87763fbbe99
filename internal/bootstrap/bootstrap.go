// Package bootstrap assembles the snapshot and the services from configuration. It is
// shared by the server, the health check and supportctl.
package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/database"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/store"
	"github.com/localnerve/supportdash/internal/trends"
)

// LoadSnapshot reads the records from the configured source. For DATA_SOURCE=database
// it also returns the open connection, which the caller must close.
func LoadSnapshot(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store.Snapshot, *gorm.DB, error) {
	switch cfg.DataSource {
	case config.DataSourceDatabase:
		db, err := database.Connect(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		snap, err := store.LoadFromDB(ctx, db)
		if err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
		return snap, db, nil
	default:
		snap, err := store.LoadEmbedded()
		if err != nil {
			return nil, nil, err
		}
		return snap, nil, nil
	}
}

// Services are the read services over one snapshot.
type Services struct {
	Query     *services.QueryService
	Trends    *services.TrendsService
	Sequencer *services.Sequencer
}

// NewServices builds the query and trends services. metrics and cache may be nil.
func NewServices(cfg *config.Config, snap *store.Snapshot, log *logger.Logger, metrics *observability.Metrics, cache services.ReportCache) Services {
	query := services.NewQueryService(snap,
		services.WithLatency(cfg.SimulatedLatency),
		services.WithQueryLocation(cfg.Location()),
	)
	pipeline := trends.New(
		trends.WithLocation(cfg.Location()),
		trends.WithLogger(log),
		trends.WithUnparsableHook(metrics.CountUnparsable),
	)
	if counts := snap.Counts(); metrics != nil {
		metrics.ObserveSnapshot(counts.Users, counts.Apps, counts.Logs)
	}
	return Services{
		Query:     query,
		Trends:    services.NewTrendsService(query, pipeline, cache, log),
		Sequencer: services.NewSequencer(),
	}
}

// Describe is a one-line account of a loaded snapshot, for startup logs.
func Describe(snap *store.Snapshot) string {
	c := snap.Counts()
	return fmt.Sprintf("%s snapshot: %d users, %d apps, %d logs", snap.Source(), c.Users, c.Apps, c.Logs)
}
