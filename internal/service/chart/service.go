// Package chart serves per-stock historical price series for the dashboard
// chart view. Fetches go through singleflight so rapid repeat clicks on the
// same row collapse into one upstream request, and recent results are held
// in a small TTL cache.
package chart

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
)

// Status is the lifecycle of one chart invocation.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// DefaultCacheTTL bounds how long a fetched series is reused before FMP is
// asked again.
const DefaultCacheTTL = 5 * time.Minute

// HistoryProvider fetches the chronological close series for a symbol.
type HistoryProvider interface {
	GetPriceHistory(ctx context.Context, symbol string) ([]stock.ChartPoint, error)
}

// Result is the outcome of one history fetch. A Failed result carries no
// points; the consumer shows the explicit "no data" state either way.
type Result struct {
	Symbol    string
	Points    []stock.ChartPoint
	Status    Status
	FetchedAt time.Time
}

// NoData reports whether the result has nothing to chart, from either an
// empty upstream series or a failed fetch.
func (r Result) NoData() bool {
	return len(r.Points) == 0
}

type cacheEntry struct {
	result Result
}

// Service fetches and caches chart series.
type Service struct {
	provider HistoryProvider
	ttl      time.Duration

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]cacheEntry
	hits  atomic.Int64
}

// NewService creates a chart service. A non-positive ttl falls back to
// DefaultCacheTTL.
func NewService(provider HistoryProvider, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		provider: provider,
		ttl:      ttl,
		cache:    make(map[string]cacheEntry),
	}
}

// History returns the chart series for symbol. Upstream or parse failures
// are logged and absorbed into a Failed result with no points; they never
// propagate as errors to the rest of the view.
func (s *Service) History(ctx context.Context, symbol string) Result {
	if cached, ok := s.lookup(symbol); ok {
		return cached
	}

	v, _, _ := s.group.Do(symbol, func() (interface{}, error) {
		// Re-check under singleflight: a concurrent caller may have
		// populated the cache while this one was queued.
		if cached, ok := s.lookup(symbol); ok {
			return cached, nil
		}

		points, err := s.provider.GetPriceHistory(ctx, symbol)
		if err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("Chart history fetch failed")
			return Result{Symbol: symbol, Status: StatusFailed, FetchedAt: time.Now()}, nil
		}

		result := Result{
			Symbol:    symbol,
			Points:    points,
			Status:    StatusLoaded,
			FetchedAt: time.Now(),
		}
		s.storeResult(symbol, result)
		return result, nil
	})
	return v.(Result)
}

func (s *Service) lookup(symbol string) (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[symbol]
	if !ok || time.Since(entry.result.FetchedAt) > s.ttl {
		return Result{}, false
	}
	s.hits.Add(1)
	return entry.result, true
}

// CacheHits is how many lookups the TTL cache served without an upstream
// fetch.
func (s *Service) CacheHits() int64 {
	return s.hits.Load()
}

func (s *Service) storeResult(symbol string, result Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[symbol] = cacheEntry{result: result}
}
