// Package cache provides the report cache backends.
package cache

import (
	"context"
	"time"

	"github.com/insurance/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ReportCache is the cache contract shared by both backends
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// New returns a Redis cache when Redis is enabled and reachable, otherwise an in-memory cache.
func New(cfg config.RedisConfig, logger *zap.Logger) ReportCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		logger.Info("Redis disabled, using in-memory report cache")
		return NewMemoryCache()
	}

	redisCache, err := NewRedisCache(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory report cache. "+
			"Cached reports will not be shared between instances.",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewMemoryCache()
	}

	logger.Info("Using Redis report cache", zap.String("addr", cfg.Addr()))
	return redisCache
}

var (
	_ ReportCache = (*RedisCache)(nil)
	_ ReportCache = (*MemoryCache)(nil)
)
