package assistant

import (
	"context"

	slotRepo "support-assistant/database/repository/slot"
	"support-assistant/models"
	"support-assistant/services/guardrail"
	"support-assistant/services/intent"
	"support-assistant/services/knowledge"

	"go.uber.org/zap"
)

// Service is the front door for chat messages: safety screening first,
// then meeting-intent detection, then the retrieval fallback.
type Service interface {
	Handle(ctx context.Context, req models.AssistantRequest) models.AssistantResponse
}

// DefaultAssistantService implements Service over injected
// collaborators. Contexts is optional; without it follow-up turns lose
// the association with an earlier meeting offer.
type DefaultAssistantService struct {
	Guardrail guardrail.Service
	Intent    intent.Detector
	Inventory slotRepo.Inventory
	Knowledge knowledge.Service
	Contexts  *RedisContextStore
	Logger    *zap.Logger
}
