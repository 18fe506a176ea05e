package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"support-assistant/models"

	"github.com/hibiken/asynq"
)

const TypeMeetingReminder = "meeting:reminder"

// reminderLead is how far ahead of the meeting the reminder fires.
const reminderLead = time.Hour

// NewReminderTask builds the asynq task for a meeting reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeMeetingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues meeting reminders onto the Redis
// queue. It satisfies scheduling.ReminderScheduler.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, meeting models.ScheduledMeeting) error {
	startAt, err := time.ParseInLocation("2006-01-02 15:04", meeting.Date+" "+meeting.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid meeting time: %w", err)
	}

	fireAt := startAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		// Too close to the meeting; nothing to remind about.
		return nil
	}

	payload := models.ReminderPayload{
		MeetingID: meeting.ID,
		Title:     "Upcoming meeting",
		Body:      fmt.Sprintf("Your %s meeting starts at %s on %s.", meeting.MeetingType, meeting.Time, meeting.Date),
		FireDate:  fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return err
	}
	return nil
}
