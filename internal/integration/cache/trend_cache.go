// Package cache implements the Redis-backed dashboard cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/village-finance/backend/internal/application/usecase/dashboard"
)

const (
	versionKey  = "dashboard:ledger_version"
	trendPrefix = "dashboard:trend:"
)

// TrendCache stores trend outputs in Redis and tracks a ledger version
// that record mutations bump to invalidate every cached series at once.
type TrendCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrendCache creates a new TrendCache. Entries expire after ttl.
func NewTrendCache(client *redis.Client, ttl time.Duration) *TrendCache {
	return &TrendCache{
		client: client,
		ttl:    ttl,
	}
}

// Version returns the current ledger version, zero if none was recorded yet.
func (c *TrendCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read ledger version: %w", err)
	}
	return version, nil
}

// GetTrend returns the cached output stored under key.
func (c *TrendCache) GetTrend(ctx context.Context, key string) (*dashboard.GetFinancialTrendOutput, bool, error) {
	raw, err := c.client.Get(ctx, trendPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read trend: %w", err)
	}

	var output dashboard.GetFinancialTrendOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		return nil, false, fmt.Errorf("failed to decode trend: %w", err)
	}
	return &output, true, nil
}

// SetTrend stores output under key.
func (c *TrendCache) SetTrend(ctx context.Context, key string, output *dashboard.GetFinancialTrendOutput) error {
	raw, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to encode trend: %w", err)
	}
	if err := c.client.Set(ctx, trendPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store trend: %w", err)
	}
	return nil
}

// Invalidate bumps the ledger version so previously cached trends are no longer read.
func (c *TrendCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump ledger version: %w", err)
	}
	return nil
}
