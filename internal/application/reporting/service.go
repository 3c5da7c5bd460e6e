// Package reporting serves the claims-by-month report with a read-through cache.
package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// DefaultCacheTTL is used when no TTL is configured
const DefaultCacheTTL = 5 * time.Minute

const claimsByMonthKeyPrefix = "report:claims_by_month:"

// Currencies lists every currency the report is cached in
var Currencies = []valueobject.Currency{valueobject.LRD, valueobject.USD}

// Cache stores rendered report payloads
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ClaimSource loads the claims the report is built from
type ClaimSource interface {
	FindFiled(ctx context.Context) ([]claims.Claim, error)
}

// CacheObserver is notified of cache hits and misses
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// Service builds claims-by-month reports
type Service struct {
	claims   ClaimSource
	cache    Cache
	ttl      time.Duration
	observer CacheObserver
	logger   *zap.Logger

	// gen is bumped by Invalidate; a computed report is only cached when
	// gen did not move while it was being built
	mu  sync.Mutex
	gen uint64
}

// Option configures a Service
type Option func(*Service)

// WithCache enables result caching
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithObserver reports cache activity to o
func WithObserver(o CacheObserver) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a report service
func NewService(source ClaimSource, opts ...Option) *Service {
	s := &Service{
		claims: source,
		ttl:    DefaultCacheTTL,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheKey returns the cache key of the report in currency
func CacheKey(currency valueobject.Currency) string {
	return claimsByMonthKeyPrefix + currency.String()
}

// ClaimsByMonth returns the report in the given currency, from cache when possible.
// Cache failures are logged and the report is computed from the database instead.
func (s *Service) ClaimsByMonth(ctx context.Context, currency valueobject.Currency) ([]claims.MonthlyClaims, error) {
	key := CacheKey(currency)
	if s.cache != nil {
		if rows, ok := s.fromCache(ctx, key); ok {
			return rows, nil
		}
	}

	gen := s.generation()
	rows, err := s.compute(ctx, currency)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.storeIfCurrent(ctx, key, rows, gen)
	}
	return rows, nil
}

// Invalidate drops the cached report in every currency
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(Currencies))
	for _, c := range Currencies {
		keys = append(keys, CacheKey(c))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("Failed to invalidate report cache", zap.Error(err))
	}
}

// Warm recomputes and caches the report in every currency
func (s *Service) Warm(ctx context.Context) error {
	gen := s.generation()
	filed, err := s.claims.FindFiled(ctx)
	if err != nil {
		return fmt.Errorf("failed to load claims: %w", err)
	}
	for _, c := range Currencies {
		rows := claims.ClaimsByMonth(filed, c)
		if s.cache != nil {
			s.storeIfCurrent(ctx, CacheKey(c), rows, gen)
		}
	}
	s.logger.Debug("Report cache warmed", zap.Int("claims", len(filed)))
	return nil
}

func (s *Service) compute(ctx context.Context, currency valueobject.Currency) ([]claims.MonthlyClaims, error) {
	filed, err := s.claims.FindFiled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claims: %w", err)
	}
	return claims.ClaimsByMonth(filed, currency), nil
}

func (s *Service) fromCache(ctx context.Context, key string) ([]claims.MonthlyClaims, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Report cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		s.miss()
		return nil, false
	}

	rows := make([]claims.MonthlyClaims, 0)
	if err := json.Unmarshal(data, &rows); err != nil {
		s.logger.Warn("Discarding malformed cached report", zap.String("key", key), zap.Error(err))
		s.miss()
		return nil, false
	}
	if s.observer != nil {
		s.observer.CacheHit()
	}
	return rows, true
}

func (s *Service) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Service) storeIfCurrent(ctx context.Context, key string, rows []claims.MonthlyClaims, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		s.logger.Debug("Report changed while computing, not caching", zap.String("key", key))
		return
	}
	s.store(ctx, key, rows)
}

func (s *Service) store(ctx context.Context, key string, rows []claims.MonthlyClaims) {
	data, err := json.Marshal(rows)
	if err != nil {
		s.logger.Warn("Failed to encode report", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("Report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) miss() {
	if s.observer != nil {
		s.observer.CacheMiss()
	}
}
