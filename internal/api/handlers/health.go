package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkellis099/Model-Screener/internal/store"
)

// HealthHandler reports service liveness and dataset state.
type HealthHandler struct {
	store   *store.Store
	started time.Time
}

// NewHealthHandler creates a new handler.
func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s, started: time.Now()}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"dataset_loaded": h.store.Loaded(),
		"records":        h.store.Len(),
		"uptime_s":       int(time.Since(h.started).Seconds()),
	})
}
