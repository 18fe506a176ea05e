package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-assistant/models"
)

func TestDetect(t *testing.T) {
	d := NewDefaultDetector()

	tests := []struct {
		name        string
		text        string
		wantRequest bool
		wantConf    float64
		wantType    models.MeetingType
		wantUrgency models.Urgency
		wantMinutes int
	}{
		{
			name:        "demo call this week",
			text:        "Can I schedule a demo call this week?",
			wantRequest: true,
			wantConf:    0.6,
			wantType:    models.MeetingDemo,
			wantUrgency: models.UrgencyMedium,
			wantMinutes: 30,
		},
		{
			name:        "bare meeting keyword stays below threshold",
			text:        "schedule a meeting",
			wantRequest: false,
			wantConf:    0.3,
			wantUrgency: models.UrgencyLow,
			wantMinutes: 30,
		},
		{
			name:        "urgent technical call for an hour",
			text:        "urgent: book a technical call about integration for an hour",
			wantRequest: true,
			wantConf:    0.8,
			wantType:    models.MeetingTechnical,
			wantUrgency: models.UrgencyHigh,
			wantMinutes: 60,
		},
		{
			name:        "quarter hour support call",
			text:        "book a quick 15 minute support call",
			wantRequest: true,
			wantConf:    0.5,
			wantType:    models.MeetingSupport,
			wantUrgency: models.UrgencyLow,
			wantMinutes: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.text)
			assert.Equal(t, tt.wantRequest, got.IsMeetingRequest)
			assert.InDelta(t, tt.wantConf, got.Confidence, 1e-9)
			require.NotNil(t, got.Extracted)
			assert.Equal(t, tt.wantType, got.Extracted.MeetingType)
			assert.Equal(t, tt.wantUrgency, got.Extracted.Urgency)
			assert.Equal(t, tt.wantMinutes, got.Extracted.DurationMinutes)
		})
	}
}

func TestDetect_NoMeetingVocabulary(t *testing.T) {
	d := NewDefaultDetector()

	got := d.Detect("hello")
	assert.False(t, got.IsMeetingRequest)
	assert.Zero(t, got.Confidence)
}

func TestDetect_TeamRequest(t *testing.T) {
	d := NewDefaultDetector()

	got := d.Detect("I need to talk with a team member about my billing issue")
	assert.True(t, got.IsMeetingRequest)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.Equal(t, models.MeetingSupport, got.Extracted.MeetingType)
	assert.Equal(t, "my billing issue", got.Extracted.Description)
}

func TestDetect_ConfidenceIsClamped(t *testing.T) {
	d := NewDefaultDetector()

	got := d.Detect("urgent! I need to talk with a team member to book a demo about the new integration")
	assert.True(t, got.IsMeetingRequest)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

// Adding an urgency marker must never reduce the score of a text that
// already carries meeting vocabulary.
func TestDetect_UrgencyIsMonotonic(t *testing.T) {
	d := NewDefaultDetector()

	bases := []string{
		"schedule a meeting",
		"book a demo",
		"talk with a team member",
		"schedule a call this week",
	}
	for _, base := range bases {
		plain := d.Detect(base)
		urgent := d.Detect(base + " urgent")
		assert.GreaterOrEqual(t, urgent.Confidence, plain.Confidence, "base: %q", base)
	}
}
