package services

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/logger"
)

func TestHealthCheckEmbedded(t *testing.T) {
	cfg := &config.Config{DataSource: config.DataSourceEmbedded}
	result := HealthCheck(context.Background(), cfg, testSnapshot(), nil, logger.Nop())

	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Snapshot)
	assert.Empty(t, result.Database)
	assert.Equal(t, "4", result.Details["snapshot_apps"])
	assert.Equal(t, "5", result.Details["snapshot_logs"])
}

func TestHealthCheckMissingSnapshotAndCache(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	cfg := &config.Config{RedisURL: "redis://" + addr}
	result := HealthCheck(context.Background(), cfg, nil, nil, logger.Nop())

	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "missing", result.Snapshot)
	assert.Equal(t, "unreachable", result.Cache)
	assert.Contains(t, result.ErrorMessage, "no snapshot loaded")
	assert.Contains(t, result.ErrorMessage, "Redis ping failed")
}
