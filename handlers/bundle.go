// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Guardrail endpoints
	ClassifyHandler       gin.HandlerFunc
	SanitizeHandler       gin.HandlerFunc
	GuardrailStatsHandler gin.HandlerFunc

	// Intent endpoints
	DetectIntentHandler gin.HandlerFunc

	// Meeting endpoints
	QuerySlotsHandler    gin.HandlerFunc
	ScheduleHandler      gin.HandlerFunc
	CancelHandler        gin.HandlerFunc
	MeetingStatusHandler gin.HandlerFunc
	MeetingStatsHandler  gin.HandlerFunc

	// Chat endpoint
	ChatQueryHandler gin.HandlerFunc
}
