package intent

import (
	"regexp"
	"strings"

	"support-assistant/models"
)

// Detector scores free text for meeting-booking intent and extracts a
// partially-filled meeting request. Pure and safe for concurrent use.
type Detector interface {
	Detect(text string) models.MeetingIntent
}

// DefaultDetector implements Detector with additive keyword scoring.
type DefaultDetector struct{}

func NewDefaultDetector() *DefaultDetector {
	return &DefaultDetector{}
}

// baseConfidence is granted for passing the keyword gate; every further
// signal adds on top, capped at 1.0. A text is treated as a meeting
// request once the total clears decisionThreshold.
const (
	baseConfidence    = 0.3
	decisionThreshold = 0.4
)

var meetingKeywords = []string{
	"schedule", "book", "appointment", "meeting", "call", "demo",
	"consultation", "support call", "technical call", "discuss",
	"talk to someone", "speak with", "meet with", "talk with",
	"talk to", "speak to", "team member", "team", "member",
}

// teamRequestPhrases get an extra boost and default the type to support.
var teamRequestPhrases = []string{"team member", "talk with", "speak with"}

var highUrgencyKeywords = []string{"urgent", "asap", "emergency", "critical", "immediately"}
var mediumUrgencyKeywords = []string{"soon", "this week", "next week"}

var descriptionPattern = regexp.MustCompile(`(?i)(?:about|regarding|concerning|discuss)\s+(.+)`)

// Detect gates on the meeting vocabulary, then scores the remaining
// signals additively. Duration never affects confidence.
func (d *DefaultDetector) Detect(text string) models.MeetingIntent {
	lower := strings.ToLower(text)

	hasMeetingKeyword := containsAny(lower, meetingKeywords)
	hasTeamRequest := containsAny(lower, teamRequestPhrases)

	if !hasMeetingKeyword && !hasTeamRequest {
		return models.MeetingIntent{IsMeetingRequest: false, Confidence: 0}
	}

	confidence := baseConfidence
	extracted := &models.ExtractedMeeting{}

	if hasTeamRequest {
		confidence += 0.3
		extracted.MeetingType = models.MeetingSupport
	}

	// Meeting type, first match in fixed priority order.
	switch {
	case strings.Contains(lower, "demo") || strings.Contains(lower, "demonstration"):
		extracted.MeetingType = models.MeetingDemo
		confidence += 0.2
	case strings.Contains(lower, "support") || strings.Contains(lower, "help") || strings.Contains(lower, "team member"):
		extracted.MeetingType = models.MeetingSupport
		confidence += 0.2
	case strings.Contains(lower, "consult") || strings.Contains(lower, "advice"):
		extracted.MeetingType = models.MeetingConsultation
		confidence += 0.2
	case strings.Contains(lower, "technical") || strings.Contains(lower, "integration"):
		extracted.MeetingType = models.MeetingTechnical
		confidence += 0.2
	}

	switch {
	case containsAny(lower, highUrgencyKeywords):
		extracted.Urgency = models.UrgencyHigh
		confidence += 0.2
	case containsAny(lower, mediumUrgencyKeywords):
		extracted.Urgency = models.UrgencyMedium
		confidence += 0.1
	default:
		extracted.Urgency = models.UrgencyLow
	}

	switch {
	case strings.Contains(lower, "hour") || strings.Contains(lower, "60"):
		extracted.DurationMinutes = 60
	case strings.Contains(lower, "15") || strings.Contains(lower, "quarter"):
		extracted.DurationMinutes = 15
	default:
		extracted.DurationMinutes = 30
	}

	if m := descriptionPattern.FindStringSubmatch(text); m != nil {
		extracted.Description = strings.TrimSpace(m[1])
		confidence += 0.1
	} else if hasTeamRequest {
		// No description phrase; keep the whole message as context.
		extracted.Description = text
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}

	return models.MeetingIntent{
		IsMeetingRequest: confidence > decisionThreshold,
		Confidence:       confidence,
		Extracted:        extracted,
	}
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
