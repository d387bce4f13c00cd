package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
)

type implCache struct {
	client *redis.Client
}

// New connects to Redis and returns a Cache backed by it
func New(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &implCache{client: client}, nil
}
