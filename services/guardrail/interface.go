package guardrail

import "support-assistant/models"

// Service screens user text against the support-assistant safety policy.
// Classification never fails; text with no rule hits yields an unblocked
// result with CategoryNone.
type Service interface {
	Classify(text string) models.GuardrailResult
	Sanitize(text string) string
	Stats() models.GuardrailStats
}

// DefaultGuardrailService implements Service on the static rule tables
// in patterns.go. It holds no state and is safe for concurrent use.
type DefaultGuardrailService struct{}

func NewDefaultGuardrailService() *DefaultGuardrailService {
	return &DefaultGuardrailService{}
}
