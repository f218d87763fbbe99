package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Data sources for the record snapshot.
const (
	DataSourceEmbedded = "embedded"
	DataSourceDatabase = "database"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port   string
	AppEnv string

	// Snapshot source
	DataSource string

	// Database configuration
	DBType            string // mysql, mariadb, postgres, sqlite, sqlite-nocgo, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Query layer
	SimulatedLatency time.Duration
	Timezone         string

	// Trends cache, disabled when RedisURL is empty
	RedisURL string
	CacheTTL time.Duration

	location *time.Location
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		AppEnv:            getEnv("APP_ENV", "development"),
		DataSource:        strings.ToLower(getEnv("DATA_SOURCE", DataSourceEmbedded)),
		DBType:            strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", ""),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		SimulatedLatency:  getEnvAsDuration("SIMULATED_LATENCY", 0),
		Timezone:          getEnv("TIMEZONE", "Local"),
		RedisURL:          getEnv("REDIS_URL", ""),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 5*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings and resolves the time zone. Call it again after
// overriding fields.
func (c *Config) Validate() error {
	if c.DBPort == "" {
		c.DBPort = defaultPort(c.DBType)
	}

	// Validate required fields
	switch c.DataSource {
	case DataSourceEmbedded:
	case DataSourceDatabase:
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required when DATA_SOURCE=%s", DataSourceDatabase)
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be %q or %q, got %q",
			DataSourceEmbedded, DataSourceDatabase, c.DataSource)
	}
	if c.DBConnectionLimit < 1 {
		return fmt.Errorf("DB_CONNECTION_LIMIT must be positive")
	}
	if c.SimulatedLatency < 0 {
		return fmt.Errorf("SIMULATED_LATENCY must not be negative")
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location is the time zone used for bucketing and date presets.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// IsProduction reports whether APP_ENV selects production logging.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaultPort(dbType string) string {
	switch dbType {
	case "mysql", "mariadb":
		return "3306"
	case "postgres", "postgresql":
		return "5432"
	case "sqlserver", "mssql":
		return "1433"
	}
	return ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts a Go duration ("250ms") or a plain number of milliseconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
