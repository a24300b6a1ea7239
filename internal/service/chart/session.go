package chart

import (
	"context"
	"sync"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
)

// Session is the chart view of one browsing session: at most one symbol is
// active, and each open/close supersedes any fetch still in flight. A
// fetch captures a generation token when it starts; Resolve commits its
// result only if that token is still current, so a stale response can
// neither replace a newer selection nor reopen a closed view. The network
// request itself is not cancelled, only its result is discarded.
type Session struct {
	svc *Service

	mu     sync.Mutex
	gen    uint64
	symbol string
	status Status
	points []stock.ChartPoint
}

// NewSession creates an idle chart session backed by svc.
func NewSession(svc *Service) *Session {
	return &Session{svc: svc, status: StatusIdle}
}

// Open selects symbol for charting, drops any previously loaded points,
// and returns the generation token its fetch must present to Resolve.
func (s *Session) Open(symbol string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.symbol = symbol
	s.status = StatusLoading
	s.points = nil
	return s.gen
}

// Close tears down the chart view, clearing both the loading state and any
// loaded points.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.symbol = ""
	s.status = StatusIdle
	s.points = nil
}

// Resolve commits a fetch result if gen is still the active generation.
// It reports whether the result was committed; stale results are dropped.
func (s *Session) Resolve(gen uint64, result Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || result.Symbol != s.symbol {
		return false
	}
	s.status = result.Status
	s.points = result.Points
	return true
}

// Fetch runs open-fetch-resolve for symbol in one call and returns the
// session's view afterwards. If another Open or Close happened while the
// fetch was in flight the result is discarded and the newer state wins.
func (s *Session) Fetch(ctx context.Context, symbol string) (Status, []stock.ChartPoint) {
	gen := s.Open(symbol)
	result := s.svc.History(ctx, symbol)
	s.Resolve(gen, result)
	return s.State()
}

// State returns the current status and points of the chart view.
func (s *Session) State() (Status, []stock.ChartPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.points
}

// ActiveSymbol is the symbol currently selected for charting, empty when
// the view is closed.
func (s *Session) ActiveSymbol() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symbol
}
