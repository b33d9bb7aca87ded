package handlers

import (
	"net/http"

	"rentmap-backend/internal/models"
	"rentmap-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DecisionHandler struct {
	decisionService *services.DecisionService
}

func NewDecisionHandler(decisionService *services.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionService: decisionService}
}

// ListDecisions returns every decision the authenticated user has stored.
func (h *DecisionHandler) ListDecisions(c *gin.Context) {
	userID := c.GetString("user_id")

	decisions, err := h.decisionService.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"decisions": decisions})
}

// GetDecision returns the decision stored for one listing URL, or 404.
func (h *DecisionHandler) GetDecision(c *gin.Context) {
	userID := c.GetString("user_id")
	listingURL := c.Query("url")
	if listingURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'url' is required"})
		return
	}

	decision, err := h.decisionService.Get(c.Request.Context(), userID, listingURL)
	if err != nil {
		c.Error(err)
		return
	}
	if decision == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "decision not found"})
		return
	}
	c.JSON(http.StatusOK, decision)
}

// UpsertDecision stores or replaces the user's verdict about a listing.
func (h *DecisionHandler) UpsertDecision(c *gin.Context) {
	userID := c.GetString("user_id")

	var decision models.Decision
	if err := c.ShouldBindJSON(&decision); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.decisionService.Upsert(c.Request.Context(), userID, &decision); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, decision)
}
