package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/store"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		AppEnv:            "production",
		DataSource:        config.DataSourceDatabase,
		DBType:            "sqlite-nocgo",
		DBDatabase:        filepath.Join(t.TempDir(), "support.db"),
		DBConnectionLimit: 1,
	}
}

func TestDialectorUnsupported(t *testing.T) {
	_, err := Dialector(&config.Config{DBType: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestDialectorNames(t *testing.T) {
	cases := map[string]string{
		"mysql":        "mysql",
		"mariadb":      "mysql",
		"postgres":     "postgres",
		"sqlite":       "sqlite",
		"sqlite-nocgo": "sqlite",
		"sqlserver":    "sqlserver",
	}
	for dbType, name := range cases {
		d, err := Dialector(&config.Config{DBType: dbType, DBHost: "db", DBPort: "1", DBDatabase: "x"})
		require.NoError(t, err, dbType)
		assert.Equal(t, name, d.Name(), dbType)
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(&config.Config{
		DBUser: "support", DBPassword: "p@ss", DBHost: "db", DBPort: "3306", DBDatabase: "supportdash",
	})
	assert.Contains(t, dsn, "support:p@ss@tcp(db:3306)/supportdash?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestSeedAndLoad(t *testing.T) {
	cfg := sqliteConfig(t)
	db, err := Connect(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrate(db))

	fixtures, err := store.LoadEmbedded()
	require.NoError(t, err)

	ctx := context.Background()
	counts, err := Seed(ctx, db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Counts(), counts)

	// seeding again must not duplicate rows
	_, err = Seed(ctx, db, fixtures)
	require.NoError(t, err)

	var logCount int64
	require.NoError(t, db.Model(&models.AppAILog{}).Count(&logCount).Error)
	assert.Equal(t, int64(fixtures.Counts().Logs), logCount)

	loaded, err := store.LoadFromDB(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Counts(), loaded.Counts())

	want, _ := fixtures.App(3)
	got, ok := loaded.App(3)
	require.True(t, ok)
	assert.Equal(t, want, got)

	for _, l := range loaded.Logs() {
		assert.False(t, l.Raw.Empty(), "log %d", l.ID)
	}
}
