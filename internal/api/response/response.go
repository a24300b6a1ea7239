// Package response defines the JSON envelope every API endpoint uses.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkellis099/Model-Screener/internal/api/middleware"
)

// SuccessResponse represents a successful API response.
type SuccessResponse struct {
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Meta       Meta        `json:"meta"`
}

// Pagination describes the cursor slice the list endpoints return. The
// dashboard paginates by growing a display count, so there is no page
// number; HasMore tells the client whether another load-more step would
// reveal additional rows.
type Pagination struct {
	Limit      int  `json:"limit"`
	Returned   int  `json:"returned"`
	TotalCount int  `json:"total_count"`
	HasMore    bool `json:"has_more"`
}

// Meta represents metadata in a response.
type Meta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count,omitempty"`
}

// Success sends a successful response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetRequestID(c),
			Timestamp: time.Now(),
		},
	})
}

// SuccessList sends a successful response with list data and count.
func SuccessList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetRequestID(c),
			Timestamp: time.Now(),
			Count:     count,
		},
	})
}

// SuccessWithPagination sends a successful response with a pagination
// block.
func SuccessWithPagination(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:       data,
		Pagination: pagination,
		Meta: Meta{
			RequestID: middleware.GetRequestID(c),
			Timestamp: time.Now(),
		},
	})
}

// NewPagination builds the pagination block for a visible slice of
// returned rows out of totalCount filtered rows.
func NewPagination(limit, returned, totalCount int) *Pagination {
	return &Pagination{
		Limit:      limit,
		Returned:   returned,
		TotalCount: totalCount,
		HasMore:    returned < totalCount,
	}
}
