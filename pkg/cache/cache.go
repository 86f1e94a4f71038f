package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

// Service defines cache operations interface.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, keys ...string) (bool, error)
	Close() error
}

// GetOrCompute returns the cached value for key, or runs compute, stores the
// result with the given TTL, and returns it. Compute errors are never cached.
func GetOrCompute[T any](ctx context.Context, c Service, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, bool, error) {
	var cached T
	if err := c.Get(ctx, key, &cached); err == nil {
		return cached, true, nil
	}

	v, err := compute(ctx)
	if err != nil {
		return v, false, err
	}

	// Best effort: a failed write must not fail the request.
	_ = c.Set(ctx, key, v, ttl)
	return v, false, nil
}
