package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL bounds how long a cached comparison stays valid. Inputs fully
// determine the result, so the TTL only limits memory growth.
const cacheTTL = 24 * time.Hour

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, cacheTTL).Err()
}
