package scheduling

import (
	"context"

	meetingRepo "support-assistant/database/repository/meeting"
	slotRepo "support-assistant/database/repository/slot"
	"support-assistant/models"
	"support-assistant/services/notification"

	"go.uber.org/zap"
)

// Engine manages the lifecycle of scheduled meetings. Meetings are
// created as "scheduled" and only move to "cancelled" here; the
// confirmation workflow owns the other transitions.
type Engine interface {
	Schedule(ctx context.Context, req models.MeetingRequest) models.BookingResult
	Cancel(ctx context.Context, meetingID, requesterID string) models.CancelResult
	GetStatus(ctx context.Context, meetingID string) (*models.ScheduledMeeting, error)
	Stats(ctx context.Context) (models.MeetingStats, error)
}

// ReminderScheduler queues a reminder to fire ahead of a meeting.
// Implemented by the cron package; nil disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, meeting models.ScheduledMeeting) error
}

// DefaultSchedulingEngine implements Engine on an injected slot
// inventory and meeting repository.
type DefaultSchedulingEngine struct {
	Inventory slotRepo.Inventory
	Repo      meetingRepo.Repository
	Notifier  notification.Service
	Reminders ReminderScheduler
	Logger    *zap.Logger
}
