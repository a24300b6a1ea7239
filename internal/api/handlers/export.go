package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkellis099/Model-Screener/internal/export"
	"github.com/dkellis099/Model-Screener/internal/service/screener"
	"github.com/dkellis099/Model-Screener/internal/store"
)

// ExportHandler serves the CSV download of the visible ranking slice.
type ExportHandler struct {
	store *store.Store
}

// NewExportHandler creates a new handler.
func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// Download handles GET /api/stocks/export?sector=&limit=. It applies the
// same filter and pagination as the list endpoint and streams the result
// as an attachment. An empty dataset still downloads a header-only CSV.
func (h *ExportHandler) Download(c *gin.Context) {
	sector := c.DefaultQuery("sector", screener.SectorAll)
	limit := parseLimit(c, screener.DefaultPageSize, maxListLimit)

	visible := screener.Paginate(screener.Filter(h.store.Records(), sector), limit)

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.FileName))
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, visible); err != nil {
		// Headers are gone by now; log and let the truncated body stand.
		log.Error().Err(err).Str("sector", sector).Msg("CSV export write failed")
	}
}
