package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/localnerve/supportdash/internal/observability"
)

const cacheKeyPrefix = "supportdash:trends:"

// RedisCache keeps trends reports in Redis for a fixed TTL.
type RedisCache struct {
	client  redis.UniversalClient
	ttl     time.Duration
	metrics *observability.Metrics
}

// NewRedisCache wraps client. metrics may be nil.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration, metrics *observability.Metrics) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, metrics: metrics}
}

// DialRedis parses a redis:// URL and checks the server answers.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Get returns the cached report for key, if present.
func (c *RedisCache) Get(ctx context.Context, key string) (TrendsReport, bool, error) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.CountCache(false)
		return TrendsReport{}, false, nil
	}
	if err != nil {
		return TrendsReport{}, false, err
	}

	var report TrendsReport
	if err := json.Unmarshal(raw, &report); err != nil {
		c.metrics.CountCache(false)
		return TrendsReport{}, false, fmt.Errorf("decoding cached report: %w", err)
	}
	c.metrics.CountCache(true)
	return report, true, nil
}

// Set stores report under key.
func (c *RedisCache) Set(ctx context.Context, key string, report TrendsReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKeyPrefix+key, raw, c.ttl).Err()
}
