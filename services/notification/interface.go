package notification

import (
	"context"

	"support-assistant/models"

	"go.uber.org/zap"
)

// Service fans out meeting lifecycle notifications. The engine treats
// delivery failures as non-fatal; a booking never fails because an
// email did.
type Service interface {
	SendMeetingConfirmation(ctx context.Context, meeting models.ScheduledMeeting) error
	SendMeetingReminder(ctx context.Context, meeting models.ScheduledMeeting) error
	SendCancellationNotice(ctx context.Context, meeting models.ScheduledMeeting) error
}

// LogNotificationService records deliveries in the log. It is the
// default until a real sender is injected behind the same interface.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) SendMeetingConfirmation(ctx context.Context, meeting models.ScheduledMeeting) error {
	s.Logger.Info("meeting confirmation sent",
		zap.String("meetingId", meeting.ID),
		zap.String("email", meeting.Email),
		zap.String("date", meeting.Date),
		zap.String("time", meeting.Time),
	)
	return nil
}

func (s *LogNotificationService) SendMeetingReminder(ctx context.Context, meeting models.ScheduledMeeting) error {
	s.Logger.Info("meeting reminder sent",
		zap.String("meetingId", meeting.ID),
		zap.String("email", meeting.Email),
		zap.String("date", meeting.Date),
		zap.String("time", meeting.Time),
	)
	return nil
}

func (s *LogNotificationService) SendCancellationNotice(ctx context.Context, meeting models.ScheduledMeeting) error {
	s.Logger.Info("meeting cancellation notice sent",
		zap.String("meetingId", meeting.ID),
		zap.String("email", meeting.Email),
	)
	return nil
}
