package reporting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	claims []claims.Claim
	err    error
	calls  int
}

func (s *stubClaims) FindFiled(context.Context) ([]claims.Claim, error) {
	s.calls++
	return s.claims, s.err
}

type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	failGet bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, false, errors.New("connection refused")
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mapCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

type countingObserver struct{ hits, misses int }

func (o *countingObserver) CacheHit()  { o.hits++ }
func (o *countingObserver) CacheMiss() { o.misses++ }

func claim(number, filed, amount string) claims.Claim {
	c := claims.Claim{ClaimNumber: number}
	d := valueobject.MustParseDate(filed)
	c.FiledDate = &d
	c.SetAmount(decimal.RequireFromString(amount))
	return c
}

func TestService_ClaimsByMonth_WithoutCache(t *testing.T) {
	src := &stubClaims{claims: []claims.Claim{
		claim("C-1", "2024-02-01", "100"),
		claim("C-2", "2024-01-15", "300"),
		claim("C-3", "2024-02-20", "50"),
	}}
	svc := NewService(src)

	rows, err := svc.ClaimsByMonth(context.Background(), valueobject.LRD)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, 2, rows[1].Count)
	assert.True(t, decimal.NewFromInt(150).Equal(rows[1].TotalValue))

	_, err = svc.ClaimsByMonth(context.Background(), valueobject.LRD)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestService_ClaimsByMonth_ReadsThroughCache(t *testing.T) {
	src := &stubClaims{claims: []claims.Claim{claim("C-1", "2024-03-03", "1000")}}
	cache := newMapCache()
	obs := &countingObserver{}
	svc := NewService(src, WithCache(cache, time.Minute), WithObserver(obs))
	ctx := context.Background()

	first, err := svc.ClaimsByMonth(ctx, valueobject.USD)
	require.NoError(t, err)
	second, err := svc.ClaimsByMonth(ctx, valueobject.USD)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 1, obs.misses)
	assert.Equal(t, 1, obs.hits)
	require.Len(t, second, 1)
	assert.True(t, first[0].TotalValue.Equal(second[0].TotalValue))
	assert.True(t, decimal.NewFromInt(5).Equal(second[0].TotalValue))
	assert.Equal(t, time.Minute, cache.ttls["report:claims_by_month:USD"])
}

func TestService_Invalidate(t *testing.T) {
	src := &stubClaims{}
	cache := newMapCache()
	svc := NewService(src, WithCache(cache, 0))
	ctx := context.Background()

	require.NoError(t, svc.Warm(ctx))
	assert.Len(t, cache.entries, 2)
	assert.Equal(t, DefaultCacheTTL, cache.ttls[CacheKey(valueobject.LRD)])

	svc.Invalidate(ctx)
	assert.Empty(t, cache.entries)
}

func TestService_CacheFailureFallsBackToDatabase(t *testing.T) {
	src := &stubClaims{claims: []claims.Claim{claim("C-1", "2024-03-03", "10")}}
	cache := newMapCache()
	cache.failGet = true
	svc := NewService(src, WithCache(cache, time.Minute))

	rows, err := svc.ClaimsByMonth(context.Background(), valueobject.LRD)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestService_EmptyReportIsNotNil(t *testing.T) {
	svc := NewService(&stubClaims{}, WithCache(newMapCache(), time.Minute))

	rows, err := svc.ClaimsByMonth(context.Background(), valueobject.LRD)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	cached, err := svc.ClaimsByMonth(context.Background(), valueobject.LRD)
	require.NoError(t, err)
	assert.NotNil(t, cached)
}

func TestService_SourceError(t *testing.T) {
	svc := NewService(&stubClaims{err: errors.New("db down")})

	_, err := svc.ClaimsByMonth(context.Background(), valueobject.LRD)
	assert.ErrorContains(t, err, "db down")
	assert.Error(t, svc.Warm(context.Background()))
}

// writeDuringRead simulates a claim write landing while the report is built
type writeDuringRead struct {
	stubClaims
	onRead func()
}

func (w *writeDuringRead) FindFiled(ctx context.Context) ([]claims.Claim, error) {
	rows, err := w.stubClaims.FindFiled(ctx)
	if w.onRead != nil {
		w.onRead()
		w.onRead = nil
	}
	return rows, err
}

func TestService_InvalidateDuringComputeSkipsCacheWrite(t *testing.T) {
	ctx := context.Background()
	src := &writeDuringRead{stubClaims: stubClaims{claims: []claims.Claim{claim("C-1", "2024-01-10", "100")}}}
	cache := newMapCache()
	svc := NewService(src, WithCache(cache, time.Minute))
	src.onRead = func() { svc.Invalidate(ctx) }

	rows, err := svc.ClaimsByMonth(ctx, valueobject.LRD)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	_, cached := cache.entries[CacheKey(valueobject.LRD)]
	assert.False(t, cached)

	_, err = svc.ClaimsByMonth(ctx, valueobject.LRD)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
	_, cached = cache.entries[CacheKey(valueobject.LRD)]
	assert.True(t, cached)
}

func TestService_WarmSkipsCacheWriteAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	src := &writeDuringRead{stubClaims: stubClaims{claims: []claims.Claim{claim("C-1", "2024-01-10", "100")}}}
	cache := newMapCache()
	svc := NewService(src, WithCache(cache, time.Minute))
	src.onRead = func() { svc.Invalidate(ctx) }

	require.NoError(t, svc.Warm(ctx))
	assert.Empty(t, cache.entries)

	require.NoError(t, svc.Warm(ctx))
	assert.Len(t, cache.entries, len(Currencies))
}
