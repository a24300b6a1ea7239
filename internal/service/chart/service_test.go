package chart

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
)

// fakeProvider returns a scripted series or error and counts calls.
type fakeProvider struct {
	points []stock.ChartPoint
	err    error
	calls  atomic.Int64
}

func (f *fakeProvider) GetPriceHistory(ctx context.Context, symbol string) ([]stock.ChartPoint, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

func TestServiceHistory(t *testing.T) {
	t.Run("successful fetch is Loaded", func(t *testing.T) {
		provider := &fakeProvider{points: []stock.ChartPoint{{Date: "Jan 2", Price: 101}}}
		svc := NewService(provider, time.Minute)

		result := svc.History(context.Background(), "AAPL")
		if result.Status != StatusLoaded {
			t.Errorf("status = %s, want loaded", result.Status)
		}
		if len(result.Points) != 1 || result.NoData() {
			t.Errorf("unexpected points: %+v", result.Points)
		}
	})

	t.Run("failure is absorbed into a no-data result", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("upstream down")}
		svc := NewService(provider, time.Minute)

		result := svc.History(context.Background(), "AAPL")
		if result.Status != StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
		if !result.NoData() {
			t.Error("failed result should report no data")
		}
	})

	t.Run("empty series is Loaded with no data", func(t *testing.T) {
		provider := &fakeProvider{}
		svc := NewService(provider, time.Minute)

		result := svc.History(context.Background(), "EMPTY")
		if result.Status != StatusLoaded {
			t.Errorf("status = %s, want loaded", result.Status)
		}
		if !result.NoData() {
			t.Error("empty series should report no data")
		}
	})

	t.Run("cache serves repeat lookups within TTL", func(t *testing.T) {
		provider := &fakeProvider{points: []stock.ChartPoint{{Date: "Jan 2", Price: 101}}}
		svc := NewService(provider, time.Minute)

		svc.History(context.Background(), "AAPL")
		svc.History(context.Background(), "AAPL")

		if calls := provider.calls.Load(); calls != 1 {
			t.Errorf("provider called %d times, want 1", calls)
		}
		if svc.CacheHits() != 1 {
			t.Errorf("cache hits = %d, want 1", svc.CacheHits())
		}
	})

	t.Run("failed results are not cached", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("flaky")}
		svc := NewService(provider, time.Minute)

		svc.History(context.Background(), "AAPL")
		provider.err = nil
		provider.points = []stock.ChartPoint{{Date: "Jan 2", Price: 5}}

		result := svc.History(context.Background(), "AAPL")
		if result.Status != StatusLoaded {
			t.Errorf("recovered fetch status = %s, want loaded", result.Status)
		}
	})

	t.Run("expired entries refetch", func(t *testing.T) {
		provider := &fakeProvider{points: []stock.ChartPoint{{Date: "Jan 2", Price: 101}}}
		svc := NewService(provider, time.Nanosecond)

		svc.History(context.Background(), "AAPL")
		time.Sleep(time.Millisecond)
		svc.History(context.Background(), "AAPL")

		if calls := provider.calls.Load(); calls != 2 {
			t.Errorf("provider called %d times, want 2", calls)
		}
	})
}

func TestSessionStaleGuard(t *testing.T) {
	provider := &fakeProvider{points: []stock.ChartPoint{{Date: "Jan 2", Price: 101}}}
	svc := NewService(provider, time.Minute)

	t.Run("stale result is discarded after new selection", func(t *testing.T) {
		session := NewSession(svc)

		staleGen := session.Open("AAPL")
		// User clicks another row while the first fetch is in flight.
		session.Open("MSFT")

		committed := session.Resolve(staleGen, Result{
			Symbol: "AAPL",
			Points: []stock.ChartPoint{{Date: "Jan 2", Price: 1}},
			Status: StatusLoaded,
		})
		if committed {
			t.Error("stale result was committed")
		}

		status, points := session.State()
		if status != StatusLoading || points != nil {
			t.Errorf("view should still be loading MSFT, got %s with %d points", status, len(points))
		}
	})

	t.Run("result cannot resurrect a closed view", func(t *testing.T) {
		session := NewSession(svc)

		gen := session.Open("AAPL")
		session.Close()

		committed := session.Resolve(gen, Result{
			Symbol: "AAPL",
			Points: []stock.ChartPoint{{Date: "Jan 2", Price: 1}},
			Status: StatusLoaded,
		})
		if committed {
			t.Error("result committed into a closed view")
		}

		status, points := session.State()
		if status != StatusIdle || len(points) != 0 {
			t.Errorf("closed view should be idle and empty, got %s with %d points", status, len(points))
		}
	})

	t.Run("current result commits", func(t *testing.T) {
		session := NewSession(svc)

		status, points := session.Fetch(context.Background(), "AAPL")
		if status != StatusLoaded {
			t.Errorf("status = %s, want loaded", status)
		}
		if len(points) != 1 {
			t.Errorf("expected 1 point, got %d", len(points))
		}
		if session.ActiveSymbol() != "AAPL" {
			t.Errorf("active symbol = %q", session.ActiveSymbol())
		}
	})

	t.Run("close clears loaded points", func(t *testing.T) {
		session := NewSession(svc)
		session.Fetch(context.Background(), "AAPL")
		session.Close()

		status, points := session.State()
		if status != StatusIdle || points != nil {
			t.Errorf("expected idle empty view, got %s with %d points", status, len(points))
		}
	})
}
