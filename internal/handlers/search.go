package handlers

import (
	"errors"
	"io"
	"net/http"

	"rentmap-backend/internal/models"
	"rentmap-backend/internal/services"
	"rentmap-backend/pkg/lbc"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search runs one upstream search and returns the normalized listing batch.
// An empty body is a valid, unfiltered search. Upstream failures mirror the
// upstream status and carry a truncated diagnostic detail.
func (h *SearchHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		var upstreamErr *lbc.UpstreamError
		if errors.As(err, &upstreamErr) {
			c.JSON(upstreamErr.Status, gin.H{"error": "upstream search failed", "detail": upstreamErr.Detail})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{Results: results})
}
