package handlers

import (
	"net/http"

	"support-assistant/services/guardrail"

	"github.com/gin-gonic/gin"
)

// GuardrailHandler exposes the policy classifier.
type GuardrailHandler struct {
	Svc guardrail.Service
}

func NewGuardrailHandler(svc guardrail.Service) *GuardrailHandler {
	return &GuardrailHandler{Svc: svc}
}

type textRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyHandler handles POST /api/guardrail/classify.
func (h *GuardrailHandler) ClassifyHandler(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Svc.Classify(req.Text))
}

// SanitizeHandler handles POST /api/guardrail/sanitize.
func (h *GuardrailHandler) SanitizeHandler(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sanitized": h.Svc.Sanitize(req.Text)})
}

// StatsHandler handles GET /api/guardrail/stats.
func (h *GuardrailHandler) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Stats())
}
