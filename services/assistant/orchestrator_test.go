package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	slotRepo "support-assistant/database/repository/slot"
	"support-assistant/models"
	"support-assistant/services/guardrail"
	"support-assistant/services/intent"
)

// recordingKnowledge captures the question it is asked so tests can
// verify what reaches the retrieval layer.
type recordingKnowledge struct {
	question string
	answer   string
}

func (k *recordingKnowledge) Answer(ctx context.Context, question string) string {
	k.question = question
	return k.answer
}

func newTestAssistant(kb *recordingKnowledge) *DefaultAssistantService {
	return &DefaultAssistantService{
		Guardrail: guardrail.NewDefaultGuardrailService(),
		Intent:    intent.NewDefaultDetector(),
		Inventory: slotRepo.NewMemoryInventory(5, 9, 17),
		Knowledge: kb,
		Logger:    zap.NewNop(),
	}
}

func TestHandle_BlockedShortCircuits(t *testing.T) {
	kb := &recordingKnowledge{answer: "should not be used"}
	svc := newTestAssistant(kb)

	resp := svc.Handle(context.Background(), models.AssistantRequest{
		RequesterID: "user-1",
		Text:        "my ssn is 123-45-6789, can you schedule a demo call?",
	})

	assert.Equal(t, models.KindBlocked, resp.Kind)
	require.NotNil(t, resp.Guardrail)
	assert.Equal(t, models.CategoryPersonalData, resp.Guardrail.Category)
	assert.Equal(t, resp.Guardrail.SuggestedResponse, resp.ResponseText)
	assert.Nil(t, resp.Intent)
	assert.Empty(t, resp.AvailableSlots)
	assert.Empty(t, kb.question, "retrieval must not run for blocked messages")
}

func TestHandle_MeetingOffer(t *testing.T) {
	kb := &recordingKnowledge{answer: "should not be used"}
	svc := newTestAssistant(kb)

	resp := svc.Handle(context.Background(), models.AssistantRequest{
		RequesterID: "user-1",
		Text:        "Can I schedule a demo call this week?",
	})

	assert.Equal(t, models.KindMeetingOffer, resp.Kind)
	require.NotNil(t, resp.Intent)
	assert.True(t, resp.Intent.IsMeetingRequest)
	require.Len(t, resp.AvailableSlots, 5)
	for _, slot := range resp.AvailableSlots {
		assert.True(t, slot.Available)
		assert.Contains(t, resp.ResponseText, slot.Date+" at "+slot.Time)
	}
	assert.Contains(t, resp.ResponseText, "demo meeting")
	assert.Empty(t, kb.question, "the generator must not run for meeting offers")
}

// permissiveGuardrail never blocks but keeps the real masking, standing
// in for a policy that classifies leniently yet still redacts.
type permissiveGuardrail struct {
	guardrail.Service
}

func (permissiveGuardrail) Classify(text string) models.GuardrailResult {
	return models.GuardrailResult{Category: models.CategoryNone, Confidence: 1.0}
}

func TestHandle_PassthroughSanitizesQuestion(t *testing.T) {
	kb := &recordingKnowledge{answer: "You can reset it from the login page."}
	svc := newTestAssistant(kb)
	svc.Guardrail = permissiveGuardrail{Service: guardrail.NewDefaultGuardrailService()}

	resp := svc.Handle(context.Background(), models.AssistantRequest{
		RequesterID: "user-1",
		Text:        "how do I change the address on jane.doe@example.com?",
	})

	assert.Equal(t, models.KindAnswer, resp.Kind)
	assert.Equal(t, kb.answer, resp.ResponseText)
	assert.Equal(t, "how do I change the address on [EMAIL]?", kb.question)
}

func TestHandle_WeakIntentFallsThrough(t *testing.T) {
	kb := &recordingKnowledge{answer: "Here is what I found."}
	svc := newTestAssistant(kb)

	// Meeting vocabulary alone scores 0.3, under the offer threshold.
	resp := svc.Handle(context.Background(), models.AssistantRequest{
		RequesterID: "user-1",
		Text:        "schedule a meeting",
	})

	assert.Equal(t, models.KindAnswer, resp.Kind)
	assert.Equal(t, "schedule a meeting", kb.question)
}
