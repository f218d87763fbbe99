package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/database"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/store"
)

func TestLoadSnapshotEmbedded(t *testing.T) {
	cfg := &config.Config{DataSource: config.DataSourceEmbedded}
	snap, db, err := LoadSnapshot(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Equal(t, store.SourceEmbedded, snap.Source())
	assert.Equal(t, "embedded snapshot: 6 users, 14 apps, 57 logs", Describe(snap))
}

func TestLoadSnapshotDatabase(t *testing.T) {
	cfg := &config.Config{
		AppEnv:            "production",
		DataSource:        config.DataSourceDatabase,
		DBType:            "sqlite-nocgo",
		DBDatabase:        filepath.Join(t.TempDir(), "support.db"),
		DBConnectionLimit: 1,
	}

	seedDB, err := database.Connect(cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(seedDB))
	fixtures, err := store.LoadEmbedded()
	require.NoError(t, err)
	_, err = database.Seed(context.Background(), seedDB, fixtures)
	require.NoError(t, err)
	require.NoError(t, database.Close(seedDB))

	snap, db, err := LoadSnapshot(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, db)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.Equal(t, store.SourceDatabase, snap.Source())
	assert.Equal(t, fixtures.Counts(), snap.Counts())
}

func TestLoadSnapshotBadDatabaseType(t *testing.T) {
	cfg := &config.Config{DataSource: config.DataSourceDatabase, DBType: "oracle"}
	_, _, err := LoadSnapshot(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestNewServices(t *testing.T) {
	snap, err := store.LoadEmbedded()
	require.NoError(t, err)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	cfg := &config.Config{}
	svc := NewServices(cfg, snap, logger.Nop(), metrics, nil)
	require.NotNil(t, svc.Query)
	require.NotNil(t, svc.Sequencer)
	assert.Equal(t, 57.0, testutil.ToFloat64(metrics.SnapshotRecords.WithLabelValues("logs")))

	// the fixtures carry one log whose timestamp never parses
	_, err = svc.Trends.Data(context.Background(), services.TrendsRequest{Range: "custom"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UnparsableTimestamps))
}
