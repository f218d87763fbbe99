package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/trends"
)

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	cache := NewRedisCache(client, time.Minute, metrics)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	want := TrendsReport{
		Range:   trends.DateRange{Start: &start},
		GroupBy: trends.GroupByDay,
		Buckets: []trends.Bucket{{Date: "2024-01-01", AvgSentiment: 0.4, AvgFrustration: 3, Count: 2, Statuses: map[string]int{"stuck": 2}}},
		Summary: trends.Summary{TotalInteractions: 2, AvgSentiment: 0.4, AvgFrustration: 3, StatusDistribution: map[string]int{"stuck": 2}},
	}
	require.NoError(t, cache.Set(ctx, "k", want))
	assert.True(t, mr.Exists(cacheKeyPrefix+"k"))
	assert.Equal(t, time.Minute, mr.TTL(cacheKeyPrefix+"k"))

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Range.Start.Equal(start))
	assert.Nil(t, got.Range.End)
	assert.Equal(t, want.Buckets, got.Buckets)
	assert.Equal(t, want.Summary, got.Summary)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("miss")))
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := DialRedis(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	_ = client.Close()

	_, err = DialRedis(context.Background(), "not-a-url")
	assert.Error(t, err)
}
