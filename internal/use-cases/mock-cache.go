package use_cases

import (
	"context"
	"time"

	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// MockCache: nicht gesetzte Funktionen verhalten sich wie ein leerer Cache.
type MockCache struct {
	GetFn func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	SetFn func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError
	DelFn func(ctx context.Context, key string) error

	GetCalled int
	SetCalled int
	DelCalled int
	DelKeys   []string
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	m.GetCalled++
	if m.GetFn == nil {
		return false, nil
	}
	return m.GetFn(ctx, key, dest)
}

func (m *MockCache) Set(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
	m.SetCalled++
	if m.SetFn == nil {
		return nil
	}
	return m.SetFn(ctx, key, val, ttl)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	m.DelCalled++
	m.DelKeys = append(m.DelKeys, key)
	if m.DelFn == nil {
		return nil
	}
	return m.DelFn(ctx, key)
}
