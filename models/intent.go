package models

// ExtractedMeeting is the partially-filled meeting request pulled out of
// free text by the intent detector. Defaults when the text is silent:
// MeetingType empty, Urgency low, DurationMinutes 30, Description empty.
type ExtractedMeeting struct {
	MeetingType     MeetingType `json:"meetingType,omitempty"`
	Urgency         Urgency     `json:"urgency,omitempty"`
	DurationMinutes int         `json:"durationMinutes,omitempty"`
	Description     string      `json:"description,omitempty"`
}

// MeetingIntent is the intent detector's scored view of one user message.
type MeetingIntent struct {
	IsMeetingRequest bool              `json:"isMeetingRequest"`
	Confidence       float64           `json:"confidence"`
	Extracted        *ExtractedMeeting `json:"extracted,omitempty"`
}
