package routes

import (
	"net/http"
	"time"

	"support-assistant/handlers"
	"support-assistant/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterGuardrailRoutes registers policy-classification endpoints.
func RegisterGuardrailRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guardrail")
	{
		api.POST("/classify", hb.ClassifyHandler)
		api.POST("/sanitize", hb.SanitizeHandler)
		api.GET("/stats", hb.GuardrailStatsHandler)
	}
}

// RegisterIntentRoutes registers intent-detection endpoints.
func RegisterIntentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/intent")
	{
		api.POST("/detect", hb.DetectIntentHandler)
	}
}

// RegisterMeetingRoutes sets up the endpoints for slots and scheduling.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.GET("/slots", hb.QuerySlotsHandler)
		api.GET("/stats", hb.MeetingStatsHandler)
		api.POST("", hb.ScheduleHandler)
		api.GET("/:id", hb.MeetingStatusHandler)
		api.DELETE("/:id", hb.CancelHandler)
	}
}

// RegisterChatRoutes registers the assistant chat endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/query", hb.ChatQueryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGuardrailRoutes(r, hb)
	RegisterIntentRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
