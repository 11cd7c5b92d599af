package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) (float64, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read cached distance: %w", err)
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached distance: %w", err)
	}
	return f, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value float64) error {
	err := r.client.Set(ctx, key, strconv.FormatFloat(value, 'g', -1, 64), r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache distance: %w", err)
	}
	return nil
}
