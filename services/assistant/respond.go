package assistant

import (
	"fmt"
	"strings"

	"support-assistant/models"
)

// meetingOfferText renders the human-readable meeting offer. Slots are
// listed only when some are open; the user confirms by a follow-up
// scheduling request, not on this turn.
func meetingOfferText(detected models.MeetingIntent, slots []models.MeetingSlot) string {
	meetingType := models.MeetingSupport
	if detected.Extracted != nil && detected.Extracted.MeetingType != "" {
		meetingType = detected.Extracted.MeetingType
	}

	if len(slots) > 0 {
		labels := make([]string, 0, len(slots))
		for _, slot := range slots {
			labels = append(labels, fmt.Sprintf("%s at %s", slot.Date, slot.Time))
		}

		return fmt.Sprintf(`I'd be happy to schedule a %s meeting for you! Here are some available time slots: %s.

To confirm your meeting, please provide:
- Your preferred date and time from the options above
- A brief description of what you'd like to discuss
- Your contact information (email and phone)

I'll then schedule the meeting and send you a confirmation with the meeting link.`, meetingType, strings.Join(labels, ", "))
	}

	return fmt.Sprintf(`I'd be happy to schedule a %s meeting for you!

To schedule your meeting, please provide:
- Your preferred date and time
- A brief description of what you'd like to discuss
- Your contact information (email and phone)

I'll check availability and confirm the meeting details with you.`, meetingType)
}
