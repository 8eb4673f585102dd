package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresuchdata/chainsight/internal/config"
)

const (
	dashboardKeyPrefix = "dashboard:table:"
	scanBatchSize      = 100
)

// DashboardCache fronts the dashboard artifact reads. Payloads are the JSON
// responses keyed by table name; serving rereads the CSVs only on a miss.
type DashboardCache interface {
	Get(ctx context.Context, table string) ([]byte, bool, error)
	Set(ctx context.Context, table string, payload []byte) error
	InvalidateAll(ctx context.Context) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

// NewDashboardCache returns a redis-backed cache, or the noop cache when
// caching is disabled.
func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return &redisDashboardCache{client: client, ttl: ttl}, nil
}

// NewNoopDashboardCache never hits and never stores.
func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) Get(ctx context.Context, table string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, dashboardKeyPrefix+table).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	return payload, true, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, table string, payload []byte) error {
	if err := c.client.Set(ctx, dashboardKeyPrefix+table, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisDashboardCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, dashboardKeyPrefix, scanBatchSize)
}

func (noopDashboardCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopDashboardCache) Set(context.Context, string, []byte) error { return nil }

func (noopDashboardCache) InvalidateAll(context.Context) error { return nil }
