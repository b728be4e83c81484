package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dashboardKey = "dashboard:models"

// DashboardCache keeps the rendered dashboard payload in Redis so repeated
// admin page loads skip the metadata queries. A nil *DashboardCache is a
// no-op, letting the service run without Redis.
type DashboardCache struct {
	client *redis.Client
}

func NewDashboardCache(redisURL string) (*DashboardCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &DashboardCache{client: client}, nil
}

func (c *DashboardCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func (c *DashboardCache) Store(ctx context.Context, payload interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard payload: %w", err)
	}
	return c.client.Set(ctx, dashboardKey, data, ttl).Err()
}

// Get unmarshals the cached payload into out; ok is false on a miss.
func (c *DashboardCache) Get(ctx context.Context, out interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, dashboardKey).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Invalidate drops the cached payload; the worker calls this after every
// completed training run.
func (c *DashboardCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, dashboardKey).Err()
}
