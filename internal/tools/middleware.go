package tools

import (
	"context"
	"time"

	drepo "SolPulse/internal/domain/repository"
	"SolPulse/pkg/cache"
	applogger "SolPulse/pkg/logger"
)

// WithCache caches successful results keyed by the operation name and
// its canonicalized arguments. Failures are never cached.
func WithCache(c cache.Service, m drepo.Metrics, operation string, ttl time.Duration, l *applogger.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			if c == nil || ttl <= 0 {
				return next(ctx, args)
			}

			key := cache.OperationKey(operation, args)
			value, hit, err := cache.GetOrCompute(ctx, c, key, ttl, func(ctx context.Context) (interface{}, error) {
				return next(ctx, args)
			})
			if err != nil {
				return nil, err
			}
			if hit {
				m.RecordCache(operation, "hit")
				l.Debug("cache hit", applogger.String("operation", operation))
			} else {
				m.RecordCache(operation, "miss")
			}
			return value, nil
		}
	}
}

// WithMetrics records invocation counts and latency per operation.
func WithMetrics(m drepo.Metrics, operation string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			start := time.Now()
			result, err := next(ctx, args)
			m.RecordLatency(operation, time.Since(start).Seconds())
			if err != nil {
				m.RecordOperation(operation, "error")
				return nil, err
			}
			m.RecordOperation(operation, "ok")
			return result, nil
		}
	}
}
