package handlers

import (
	"net/http"

	slotRepo "support-assistant/database/repository/slot"
	"support-assistant/models"
	"support-assistant/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler exposes the slot inventory and the scheduling engine.
type MeetingHandler struct {
	Engine    scheduling.Engine
	Inventory slotRepo.Inventory
	Logger    *zap.Logger
}

func NewMeetingHandler(engine scheduling.Engine, inventory slotRepo.Inventory, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{Engine: engine, Inventory: inventory, Logger: logger}
}

// QuerySlotsHandler handles GET /api/meetings/slots?date=&time=.
func (h *MeetingHandler) QuerySlotsHandler(c *gin.Context) {
	slots := h.Inventory.Query(c.Query("date"), c.Query("time"))
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ScheduleHandler handles POST /api/meetings. Business failures
// (missing fields, slot taken) come back inside the result envelope;
// only malformed JSON is an HTTP error.
func (h *MeetingHandler) ScheduleHandler(c *gin.Context) {
	var req models.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result := h.Engine.Schedule(c.Request.Context(), req)
	if !result.Success {
		h.Logger.Info("scheduling attempt failed",
			zap.String("requesterId", req.RequesterID),
			zap.String("reason", result.Error),
		)
	}
	c.JSON(http.StatusOK, result)
}

type cancelRequest struct {
	RequesterID string `json:"requesterId" binding:"required"`
}

// CancelHandler handles DELETE /api/meetings/:id.
func (h *MeetingHandler) CancelHandler(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result := h.Engine.Cancel(c.Request.Context(), c.Param("id"), req.RequesterID)
	switch {
	case result.Success:
		c.JSON(http.StatusOK, result)
	case result.Error == scheduling.ErrMsgMeetingNotFound:
		c.JSON(http.StatusNotFound, result)
	case result.Error == scheduling.ErrMsgUnauthorized:
		c.JSON(http.StatusForbidden, result)
	default:
		c.JSON(http.StatusInternalServerError, result)
	}
}

// StatusHandler handles GET /api/meetings/:id.
func (h *MeetingHandler) StatusHandler(c *gin.Context) {
	meeting, err := h.Engine.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("meeting status lookup failed", zap.String("meetingId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up meeting"})
		return
	}
	if meeting == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// StatsHandler handles GET /api/meetings/stats.
func (h *MeetingHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Engine.Stats(c.Request.Context())
	if err != nil {
		h.Logger.Error("meeting stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
