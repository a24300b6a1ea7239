package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkellis099/Model-Screener/internal/api/response"
	"github.com/dkellis099/Model-Screener/internal/domain/stock"
	"github.com/dkellis099/Model-Screener/internal/service/chart"
	"github.com/dkellis099/Model-Screener/internal/store"
)

// ChartHandler serves historical price series for the chart modal.
type ChartHandler struct {
	store  *store.Store
	charts *chart.Service
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(s *store.Store, charts *chart.Service) *ChartHandler {
	return &ChartHandler{store: s, charts: charts}
}

// HistoryResponse is the chart payload. NoData is set both for an empty
// upstream series and for a failed fetch; the client renders the same
// "no data" state for either, never an error page.
type HistoryResponse struct {
	Symbol string             `json:"symbol"`
	Status chart.Status       `json:"status"`
	NoData bool               `json:"no_data"`
	Points []stock.ChartPoint `json:"points"`
}

// History handles GET /api/stocks/:symbol/history. Symbols outside the
// loaded dataset are 404; upstream failures still respond 200 with the
// no-data state.
func (h *ChartHandler) History(c *gin.Context) {
	symbol := c.Param("symbol")

	if _, ok := h.store.Lookup(symbol); !ok {
		response.NotFound(c, "unknown symbol: "+symbol)
		return
	}

	result := h.charts.History(c.Request.Context(), symbol)

	points := result.Points
	if points == nil {
		points = []stock.ChartPoint{}
	}

	response.Success(c, HistoryResponse{
		Symbol: symbol,
		Status: result.Status,
		NoData: result.NoData(),
		Points: points,
	})
}
