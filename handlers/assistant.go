package handlers

import (
	"net/http"

	"support-assistant/models"
	"support-assistant/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the chat pipeline.
type AssistantHandler struct {
	Svc    assistant.Service
	Logger *zap.Logger
}

func NewAssistantHandler(svc assistant.Service, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Logger: logger}
}

// QueryHandler handles POST /api/chat/query.
func (h *AssistantHandler) QueryHandler(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	response := h.Svc.Handle(c.Request.Context(), req)
	h.Logger.Debug("chat message handled",
		zap.String("requesterId", req.RequesterID),
		zap.String("kind", string(response.Kind)),
	)
	c.JSON(http.StatusOK, response)
}
