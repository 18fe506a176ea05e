package models

import "time"

// MeetingType is the kind of meeting a user can book.
type MeetingType string

const (
	MeetingSupport      MeetingType = "support"
	MeetingDemo         MeetingType = "demo"
	MeetingConsultation MeetingType = "consultation"
	MeetingTechnical    MeetingType = "technical"
)

// Urgency is the user-signalled urgency of a meeting request.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// MeetingStatus is the lifecycle state of a scheduled meeting.
// Meetings are created as "scheduled"; "confirmed" and "completed" are
// driven by the (future) confirmation workflow, not by this service.
type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "scheduled"
	StatusConfirmed MeetingStatus = "confirmed"
	StatusCancelled MeetingStatus = "cancelled"
	StatusCompleted MeetingStatus = "completed"
)

// MeetingSlot is one bookable (date, hour) unit of meeting time.
// Available is false iff the slot is bound to exactly one BookedBy.
type MeetingSlot struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
	BookedBy  string `json:"bookedBy,omitempty"`
}

// MeetingRequest is the payload for scheduling a meeting. The requester
// identity is caller-supplied and trusted; there is no authentication.
type MeetingRequest struct {
	RequesterID     string      `json:"requesterId"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone,omitempty"`
	MeetingType     MeetingType `json:"meetingType"`
	Date            string      `json:"date"` // "YYYY-MM-DD"
	Time            string      `json:"time"` // "HH:MM"
	DurationMinutes int         `json:"durationMinutes"`
	Description     string      `json:"description"`
	Urgency         Urgency     `json:"urgency"`
}

// ScheduledMeeting is a confirmed meeting record.
type ScheduledMeeting struct {
	ID              string        `bson:"id" json:"id"`
	RequesterID     string        `bson:"requesterId" json:"requesterId"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone,omitempty" json:"phone,omitempty"`
	MeetingType     MeetingType   `bson:"meetingType" json:"meetingType"`
	Date            string        `bson:"date" json:"date"`
	Time            string        `bson:"time" json:"time"`
	DurationMinutes int           `bson:"durationMinutes" json:"durationMinutes"`
	Description     string        `bson:"description" json:"description"`
	Urgency         Urgency       `bson:"urgency" json:"urgency"`
	Status          MeetingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	MeetingLink     string        `bson:"meetingLink" json:"meetingLink"`
}

// BookingResult is the outcome of a scheduling attempt. When the
// requested slot is taken, AlternativeSlots carries substitutes for the
// same date so the caller can recover without a second round-trip.
type BookingResult struct {
	Success          bool              `json:"success"`
	Meeting          *ScheduledMeeting `json:"meeting,omitempty"`
	Error            string            `json:"error,omitempty"`
	AlternativeSlots []MeetingSlot     `json:"alternativeSlots,omitempty"`
}

// CancelResult is the outcome of a cancellation attempt.
type CancelResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// MeetingStats aggregates the meeting store by status.
type MeetingStats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"` // scheduled + confirmed
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// ReminderPayload is the asynq task payload for a meeting reminder.
type ReminderPayload struct {
	MeetingID string `json:"meetingId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
