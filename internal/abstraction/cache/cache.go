package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// Cache speichert JSON-Werte. Get entpackt in dest und meldet, ob der Key existierte.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) error
}

// Remember ist Cache-aside: Treffer zurückgeben, sonst load aufrufen und das Ergebnis ablegen.
// Lese- und Schreibfehler des Caches werden nur geloggt, Fehler von load gehen durch.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (*T, *app_errors.AppError)) (*T, *app_errors.AppError) {
	var cached T
	found, cacheErr := c.Get(ctx, key, &cached)
	if cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", key).Msg("Cache-Lesefehler")
	} else if found {
		return &cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if cacheErr := c.Set(ctx, key, value, ttl); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", key).Msg("Cache-Schreibfehler")
	}
	return value, nil
}
