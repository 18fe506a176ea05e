package handlers

import (
	"net/http"

	"support-assistant/services/intent"

	"github.com/gin-gonic/gin"
)

// IntentHandler exposes the meeting-intent detector.
type IntentHandler struct {
	Detector intent.Detector
}

func NewIntentHandler(detector intent.Detector) *IntentHandler {
	return &IntentHandler{Detector: detector}
}

// DetectHandler handles POST /api/intent/detect.
func (h *IntentHandler) DetectHandler(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Detector.Detect(req.Text))
}
