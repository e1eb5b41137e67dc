package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil, nil when no address is configured; callers treat a
// nil client as "Redis not available".
func InitRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr, // เช่น localhost:6379
		DB:   0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect Redis: %w", err)
	}
	return client, nil
}
