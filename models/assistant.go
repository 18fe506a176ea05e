package models

// AssistantRequest is the payload coming into /api/chat/query.
type AssistantRequest struct {
	RequesterID string `json:"requesterId"`
	Text        string `json:"text"`
}

// ResponseKind tells the frontend which branch of the assistant handled
// the message.
type ResponseKind string

const (
	KindBlocked      ResponseKind = "blocked"
	KindMeetingOffer ResponseKind = "meeting_offer"
	KindAnswer       ResponseKind = "answer"
)

// AssistantResponse is what the chat endpoint returns. Exactly one of
// the branch payloads is populated, selected by Kind.
type AssistantResponse struct {
	Kind           ResponseKind     `json:"kind"`
	ResponseText   string           `json:"response"`
	Guardrail      *GuardrailResult `json:"guardrail,omitempty"`
	Intent         *MeetingIntent   `json:"intent,omitempty"`
	AvailableSlots []MeetingSlot    `json:"availableSlots,omitempty"`
}

// AssistantContext is per-requester conversation state kept in Redis so
// a follow-up message can be tied back to an earlier meeting offer.
type AssistantContext struct {
	LastIntent *MeetingIntent `json:"lastIntent,omitempty"`
}
