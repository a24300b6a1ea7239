package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkellis099/Model-Screener/internal/api/response"
	"github.com/dkellis099/Model-Screener/internal/store"
)

// SectorsHandler serves the derived sector index.
type SectorsHandler struct {
	store *store.Store
}

// NewSectorsHandler creates a new handler.
func NewSectorsHandler(s *store.Store) *SectorsHandler {
	return &SectorsHandler{store: s}
}

// List handles GET /api/sectors. The index is "All" followed by the
// distinct sectors of the dataset sorted ascending.
func (h *SectorsHandler) List(c *gin.Context) {
	sectors := h.store.Sectors()
	response.SuccessList(c, sectors, len(sectors))
}
