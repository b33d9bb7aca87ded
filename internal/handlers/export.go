package handlers

import (
	"net/http"

	"rentmap-backend/internal/models"
	"rentmap-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportRequest carries the current in-memory result batch to export.
type ExportRequest struct {
	Results []models.Listing `json:"results"`
}

// Export renders the posted result batch plus the user's stored decisions as
// a CSV attachment.
func (h *ExportHandler) Export(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.exportService.Export(c.Request.Context(), userID, req.Results)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="annonces.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
