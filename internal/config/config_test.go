package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "APP_ENV", "DATA_SOURCE", "DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE",
		"DB_USER", "DB_PASSWORD", "DB_CONNECTION_LIMIT", "SIMULATED_LATENCY", "TIMEZONE",
		"REDIS_URL", "CACHE_TTL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DataSourceEmbedded, cfg.DataSource)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, time.Duration(0), cfg.SimulatedLatency)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, time.Local, cfg.Location())
	assert.False(t, cfg.IsProduction())
}

func TestLoadDatabaseRequiresName(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_SOURCE", "database")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DATABASE")

	t.Setenv("DB_DATABASE", "support")
	t.Setenv("DB_TYPE", "postgres")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5432", cfg.DBPort)
}

func TestLoadRejectsUnknownDataSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_SOURCE", "s3")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIMULATED_LATENCY", "250")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestLoadTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cfg.Location())

	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidateAfterOverride(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Timezone = "America/New_York"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "America/New_York", cfg.Location().String())

	cfg.DataSource = DataSourceDatabase
	assert.Error(t, cfg.Validate())
}
