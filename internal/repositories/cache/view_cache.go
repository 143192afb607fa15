package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nttbank/account-service/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// ViewCache is a JSON-backed redis cache for one value type.
// Cache failures are logged and treated as misses; they never fail the caller.
type ViewCache[T any] struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewViewCache creates a ViewCache. A zero ttl stores keys without expiry.
func NewViewCache[T any](client redis.Cmdable, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, ttl: ttl}
}

// Get returns the cached value and true, or nil and false on a miss or any error.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache entry is corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return &v, true
}

// Set stores value under key.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Delete removes key.
func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
