package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkellis099/Model-Screener/internal/api/response"
	"github.com/dkellis099/Model-Screener/internal/domain/stock"
	"github.com/dkellis099/Model-Screener/internal/pkg/format"
	"github.com/dkellis099/Model-Screener/internal/service/screener"
	"github.com/dkellis099/Model-Screener/internal/store"
)

// maxListLimit caps how many rows one request may ask for.
const maxListLimit = 500

// StocksHandler serves the ranked stock list.
type StocksHandler struct {
	store *store.Store
}

// NewStocksHandler creates a new handler over the dataset store.
func NewStocksHandler(s *store.Store) *StocksHandler {
	return &StocksHandler{store: s}
}

// StockRow is one display row: raw fields for the client plus the
// formatted strings the table shows. Rank is the 1-based position within
// the visible slice.
type StockRow struct {
	Rank             int     `json:"rank"`
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Sector           string  `json:"sector"`
	MarketCap        float64 `json:"market_cap"`
	MarketCapDisplay string  `json:"market_cap_display"`
	EarningsYield    float64 `json:"earnings_yield"`
	EarningsYieldPct string  `json:"earnings_yield_pct"`
	ReturnOnCapital  float64 `json:"return_on_capital"`
	ReturnOnCapPct   string  `json:"return_on_capital_pct"`
	EYRank           float64 `json:"ey_rank"`
	ROCRank          float64 `json:"roc_rank"`
	CombinedRank     float64 `json:"combined_rank"`
}

// List handles GET /api/stocks?sector=&limit=. An unknown sector simply
// yields an empty list; dataset order is preserved, never re-sorted.
func (h *StocksHandler) List(c *gin.Context) {
	sector := c.DefaultQuery("sector", screener.SectorAll)
	limit := parseLimit(c, screener.DefaultPageSize, maxListLimit)

	filtered := screener.Filter(h.store.Records(), sector)
	visible := screener.Paginate(filtered, limit)

	rows := make([]StockRow, len(visible))
	for i, r := range visible {
		rows[i] = toRow(i+1, r)
	}

	response.SuccessWithPagination(c, rows,
		response.NewPagination(limit, len(visible), len(filtered)))
}

func toRow(rank int, r stock.Record) StockRow {
	return StockRow{
		Rank:             rank,
		Symbol:           r.Symbol,
		Name:             r.Name,
		Sector:           r.Sector,
		MarketCap:        r.MarketCap,
		MarketCapDisplay: format.MarketCap(r.MarketCap),
		EarningsYield:    r.EarningsYield,
		EarningsYieldPct: format.Percent(r.EarningsYield),
		ReturnOnCapital:  r.ReturnOnCapital,
		ReturnOnCapPct:   format.Percent(r.ReturnOnCapital),
		EYRank:           r.EYRank,
		ROCRank:          r.ROCRank,
		CombinedRank:     r.CombinedRank,
	}
}

// parseLimit parses the limit query parameter, clamping to [1, maxLimit].
func parseLimit(c *gin.Context, defaultLimit, maxLimit int) int {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
