package verifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/virtutask/virtutask-api/internal/abstraction/cache"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// CachingVerifier merkt sich erfolgreiche Prüfungen für ttl. Fehler werden nie gecacht.
type CachingVerifier struct {
	next  Verifier
	cache cache.Cache
	ttl   time.Duration
}

func NewCachingVerifier(next Verifier, c cache.Cache, ttl time.Duration) *CachingVerifier {
	return &CachingVerifier{next: next, cache: c, ttl: ttl}
}

func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:token:" + hex.EncodeToString(sum[:])
}

func (v *CachingVerifier) Verify(ctx context.Context, token string) (*entity.Account, *app_errors.AppError) {
	key := tokenCacheKey(token)

	var cached entity.Account
	found, err := v.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("Token-Cache nicht lesbar")
	} else if found && cached.ID != "" {
		return &cached, nil
	}

	account, appErr := v.next.Verify(ctx, token)
	if appErr != nil {
		return nil, appErr
	}

	if err := v.cache.Set(ctx, key, account, v.ttl); err != nil {
		log.Warn().Err(err).Msg("Token-Cache nicht beschreibbar")
	}
	return account, nil
}

func (v *CachingVerifier) SearchUsers(ctx context.Context, token, query string) ([]entity.Account, *app_errors.AppError) {
	return v.next.SearchUsers(ctx, token, query)
}
