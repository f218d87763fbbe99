package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/store"
	"github.com/localnerve/supportdash/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Snapshot     string            `json:"snapshot"`
	Database     string            `json:"database,omitempty"`
	Cache        string            `json:"cache,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

func (r *HealthCheckResult) fail(msg string) {
	r.Status = "unhealthy"
	if r.ErrorMessage == "" {
		r.ErrorMessage = msg
	} else {
		r.ErrorMessage += "; " + msg
	}
}

// HealthCheck reports on the loaded snapshot, the database it came from (when
// DATA_SOURCE=database) and the trends cache (when REDIS_URL is set). db may be nil.
func HealthCheck(ctx context.Context, cfg *config.Config, snap *store.Snapshot, db *gorm.DB, log *logger.Logger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	if snap == nil {
		result.Snapshot = "missing"
		result.fail("no snapshot loaded")
	} else {
		counts := snap.Counts()
		result.Snapshot = "ok"
		result.Details["snapshot_source"] = snap.Source()
		result.Details["snapshot_users"] = strconv.Itoa(counts.Users)
		result.Details["snapshot_apps"] = strconv.Itoa(counts.Apps)
		result.Details["snapshot_logs"] = strconv.Itoa(counts.Logs)
	}

	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			result.Database = "error"
			result.Details["database_error"] = err.Error()
			result.fail(fmt.Sprintf("Database connection error: %v", err))
			log.Warn("health check failed", "component", "database", "error", err)
		} else if err := sqlDB.PingContext(ctx); err != nil {
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.fail(fmt.Sprintf("Database ping failed: %v", err))
			log.Warn("health check failed", "component", "database", "error", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	if cfg.RedisURL != "" {
		if err := utils.PingRedis(cfg.RedisURL); err != nil {
			result.Cache = "unreachable"
			result.Details["cache_error"] = err.Error()
			result.fail(fmt.Sprintf("Redis ping failed: %v", err))
			log.Warn("health check failed", "component", "cache", "error", err)
		} else {
			result.Cache = "ok"
		}
	}

	if result.Status == "healthy" {
		log.Debug("health check passed")
	}
	return result
}
