package cache

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/utils"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redis *redis.Client) *RedisCache {
	return &RedisCache{client: redis}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	raw, appErr := utils.GetCacheData[json.RawMessage](ctx, r.client, key)
	if appErr != nil {
		return false, appErr
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(*raw, dest); err != nil {
		return false, app_errors.Internal(err)
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError {
	return utils.SetCacheData(ctx, r.client, key, &value, ttl)
}

func (r *RedisCache) Del(ctx context.Context, key string) error {
	return utils.DeleteCacheData(ctx, r.client, key)
}
