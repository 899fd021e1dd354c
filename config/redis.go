package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-backend/utils"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil, nil when REDIS_URL is not set.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	raw := strings.TrimSpace(utils.EnvOrDefault("REDIS_URL", ""))
	if raw == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
