package assistant

import (
	"context"

	"support-assistant/models"

	"go.uber.org/zap"
)

// intentThreshold mirrors the detector's own decision threshold; it is
// re-checked here so the boundary stays safe if the detector changes.
const intentThreshold = 0.4

// offeredSlotCount is how many open slots a meeting offer lists.
const offeredSlotCount = 5

// Handle sequences the pipeline and short-circuits on the first
// decisive result. A blocked message never reaches intent detection or
// retrieval; a meeting offer never calls the answer generator. Booking
// itself happens on a later request through the meetings API, once the
// user has picked a slot and supplied contact details.
func (s *DefaultAssistantService) Handle(ctx context.Context, req models.AssistantRequest) models.AssistantResponse {
	verdict := s.Guardrail.Classify(req.Text)
	if verdict.IsBlocked {
		s.Logger.Info("message blocked",
			zap.String("requesterId", req.RequesterID),
			zap.String("category", string(verdict.Category)),
			zap.Float64("confidence", verdict.Confidence),
		)
		return models.AssistantResponse{
			Kind:         models.KindBlocked,
			ResponseText: verdict.SuggestedResponse,
			Guardrail:    &verdict,
		}
	}

	detected := s.Intent.Detect(req.Text)
	if detected.IsMeetingRequest && detected.Confidence > intentThreshold {
		slots := s.Inventory.Query("", "")
		if len(slots) > offeredSlotCount {
			slots = slots[:offeredSlotCount]
		}

		if s.Contexts != nil && req.RequesterID != "" {
			aiCtx := &models.AssistantContext{LastIntent: &detected}
			if err := s.Contexts.Set(ctx, req.RequesterID, aiCtx); err != nil {
				s.Logger.Warn("failed to save conversation context",
					zap.String("requesterId", req.RequesterID), zap.Error(err))
			}
		}

		return models.AssistantResponse{
			Kind:           models.KindMeetingOffer,
			ResponseText:   meetingOfferText(detected, slots),
			Intent:         &detected,
			AvailableSlots: slots,
		}
	}

	// Fallback: retrieval-augmented answer over the sanitized text.
	answer := s.Knowledge.Answer(ctx, s.Guardrail.Sanitize(req.Text))
	return models.AssistantResponse{
		Kind:         models.KindAnswer,
		ResponseText: answer,
	}
}
