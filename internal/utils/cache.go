package utils

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// GetCacheData liest cacheKey aus Redis und entpackt den JSON-Wert in T.
// Cache-Miss liefert (nil, nil).
func GetCacheData[T any](ctx context.Context, rdb *redis.Client, cacheKey string) (*T, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, app_errors.Internal(err)
	}
	var data T
	if err := json.Unmarshal(val, &data); err != nil {
		return nil, app_errors.Internal(err)
	}
	return &data, nil
}

// SetCacheData serialisiert data als JSON und speichert es mit Ablaufzeit in Redis.
func SetCacheData[T any](ctx context.Context, rdb *redis.Client, cacheKey string, data *T, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.Internal(err)
	}

	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.Internal(err)
	}

	return nil
}

// DeleteCacheData löscht cacheKey. Kein Fehler, wenn der Key nicht existiert.
func DeleteCacheData(ctx context.Context, rdb *redis.Client, cacheKey string) error {
	return rdb.Del(ctx, cacheKey).Err()
}
