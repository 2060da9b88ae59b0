package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/santiago_crash_dashboard/internal/models"
	"github.com/shenikar/santiago_crash_dashboard/internal/service"
)

type RedisAggregateCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisAggregateCache(redisClient *redis.Client, ttl time.Duration) service.AggregateCache {
	return &RedisAggregateCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get возвращает агрегат из Redis, (nil, nil) если ключа нет
func (c *RedisAggregateCache) Get(ctx context.Context, key string) (*models.SelectionAggregate, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get aggregate from cache: %w", err)
	}

	agg := &models.SelectionAggregate{}
	if err := json.Unmarshal(val, agg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aggregate from cache: %w", err)
	}
	return agg, nil
}

// Set сохраняет агрегат в Redis
func (c *RedisAggregateCache) Set(ctx context.Context, key string, aggregate *models.SelectionAggregate) error {
	val, err := json.Marshal(aggregate)
	if err != nil {
		return fmt.Errorf("failed to marshal aggregate for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set aggregate in cache: %w", err)
	}
	return nil
}
