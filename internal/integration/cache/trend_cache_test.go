package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/application/usecase/dashboard"
)

var _ adapter.CacheInvalidator = (*TrendCache)(nil)
var _ dashboard.TrendCache = (*TrendCache)(nil)

func newTestCache(t *testing.T, ttl time.Duration) (*TrendCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTrendCache(client, ttl), server
}

func TestTrendCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, found, err := cache.GetTrend(ctx, "monthly:2024-06-15:v0")
	require.NoError(t, err)
	assert.False(t, found)

	output := &dashboard.GetFinancialTrendOutput{
		Granularity: dashboard.GranularityMonthly,
		GeneratedAt: time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC),
		Points: []dashboard.SeriesPoint{
			{Label: "Jan", IncomeTotal: decimal.RequireFromString("500000.25"), ExpenseTotal: decimal.Zero},
		},
		SkippedRecords: 2,
	}
	require.NoError(t, cache.SetTrend(ctx, "monthly:2024-06-15:v0", output))

	cached, found, err := cache.GetTrend(ctx, "monthly:2024-06-15:v0")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, dashboard.GranularityMonthly, cached.Granularity)
	assert.Equal(t, 2, cached.SkippedRecords)
	require.Len(t, cached.Points, 1)
	assert.Equal(t, "Jan", cached.Points[0].Label)
	assert.True(t, cached.Points[0].IncomeTotal.Equal(decimal.RequireFromString("500000.25")))
}

func TestTrendCache_EntriesExpire(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetTrend(ctx, "daily:2024-06-15:v0", &dashboard.GetFinancialTrendOutput{}))
	server.FastForward(2 * time.Minute)

	_, found, err := cache.GetTrend(ctx, "daily:2024-06-15:v0")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTrendCache_InvalidateBumpsVersion(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	version, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.Invalidate(ctx))

	version, err = cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestTrendCache_RedisDown(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	server.Close()

	_, err := cache.Version(context.Background())
	assert.Error(t, err)
	assert.Error(t, cache.Invalidate(context.Background()))
}
