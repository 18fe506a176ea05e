package scheduling

// Error messages surfaced in result envelopes. The scheduling API
// reports business failures inside BookingResult/CancelResult rather
// than as Go errors; nothing here crosses the module boundary as a
// fault.
const (
	ErrMsgMissingFields   = "Missing required fields: requesterId, email, date, and time are required"
	ErrMsgSlotUnavailable = "Requested time slot is not available"
	ErrMsgMeetingNotFound = "Meeting not found"
	ErrMsgUnauthorized    = "Unauthorized to cancel this meeting"
)
