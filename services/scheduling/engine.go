package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	meetingRepo "support-assistant/database/repository/meeting"
	"support-assistant/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Schedule books the requested slot and creates the meeting record.
// When the slot is taken the caller gets alternatives for the same
// date instead of a bare failure. The slot claim happens before the
// record is written, so of two concurrent requests for the same slot
// exactly one can succeed.
func (e *DefaultSchedulingEngine) Schedule(ctx context.Context, req models.MeetingRequest) (result models.BookingResult) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Error("schedule panicked", zap.Any("error", r))
			result = models.BookingResult{
				Success: false,
				Error:   fmt.Sprintf("Failed to schedule meeting: %v", r),
			}
		}
	}()

	if req.RequesterID == "" || req.Email == "" || req.Date == "" || req.Time == "" {
		return models.BookingResult{Success: false, Error: ErrMsgMissingFields}
	}

	if !e.Inventory.Book(req.Date, req.Time, req.RequesterID) {
		return models.BookingResult{
			Success:          false,
			Error:            ErrMsgSlotUnavailable,
			AlternativeSlots: e.Inventory.Query(req.Date, ""),
		}
	}

	meeting := models.ScheduledMeeting{
		ID:              uuid.New().String(),
		RequesterID:     req.RequesterID,
		Email:           req.Email,
		Phone:           req.Phone,
		MeetingType:     req.MeetingType,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		Urgency:         req.Urgency,
		Status:          models.StatusScheduled,
		CreatedAt:       time.Now(),
		MeetingLink:     newMeetingLink(),
	}

	if err := e.Repo.Insert(ctx, meeting); err != nil {
		// Roll the claim back so the slot is not stranded.
		e.Inventory.Release(req.Date, req.Time)
		e.Logger.Error("failed to persist meeting", zap.Error(err))
		return models.BookingResult{
			Success: false,
			Error:   "Failed to schedule meeting: " + err.Error(),
		}
	}

	e.Logger.Info("meeting scheduled",
		zap.String("meetingId", meeting.ID),
		zap.String("requesterId", meeting.RequesterID),
		zap.String("date", meeting.Date),
		zap.String("time", meeting.Time),
	)

	if e.Notifier != nil {
		if err := e.Notifier.SendMeetingConfirmation(ctx, meeting); err != nil {
			e.Logger.Warn("confirmation delivery failed", zap.String("meetingId", meeting.ID), zap.Error(err))
		}
	}
	if e.Reminders != nil {
		if err := e.Reminders.ScheduleReminder(ctx, meeting); err != nil {
			e.Logger.Warn("reminder enqueue failed", zap.String("meetingId", meeting.ID), zap.Error(err))
		}
	}

	return models.BookingResult{Success: true, Meeting: &meeting}
}

// Cancel releases the slot held by the meeting and marks it cancelled.
// Only the original requester may cancel; failed checks mutate nothing.
func (e *DefaultSchedulingEngine) Cancel(ctx context.Context, meetingID, requesterID string) models.CancelResult {
	meeting, err := e.Repo.GetByID(ctx, meetingID)
	if errors.Is(err, meetingRepo.ErrNotFound) {
		return models.CancelResult{Success: false, Error: ErrMsgMeetingNotFound}
	}
	if err != nil {
		e.Logger.Error("meeting lookup failed", zap.String("meetingId", meetingID), zap.Error(err))
		return models.CancelResult{Success: false, Error: err.Error()}
	}

	if meeting.RequesterID != requesterID {
		return models.CancelResult{Success: false, Error: ErrMsgUnauthorized}
	}

	e.Inventory.Release(meeting.Date, meeting.Time)
	if err := e.Repo.SetStatus(ctx, meetingID, models.StatusCancelled); err != nil {
		e.Logger.Error("failed to mark meeting cancelled", zap.String("meetingId", meetingID), zap.Error(err))
		return models.CancelResult{Success: false, Error: err.Error()}
	}

	e.Logger.Info("meeting cancelled",
		zap.String("meetingId", meetingID),
		zap.String("requesterId", requesterID),
	)

	if e.Notifier != nil {
		meeting.Status = models.StatusCancelled
		if err := e.Notifier.SendCancellationNotice(ctx, *meeting); err != nil {
			e.Logger.Warn("cancellation notice delivery failed", zap.String("meetingId", meetingID), zap.Error(err))
		}
	}

	return models.CancelResult{Success: true}
}

// GetStatus returns the meeting record, or nil when no meeting exists
// for the id. Absence is a valid result, not a fault.
func (e *DefaultSchedulingEngine) GetStatus(ctx context.Context, meetingID string) (*models.ScheduledMeeting, error) {
	meeting, err := e.Repo.GetByID(ctx, meetingID)
	if errors.Is(err, meetingRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

// Stats aggregates the meeting store by status.
func (e *DefaultSchedulingEngine) Stats(ctx context.Context) (models.MeetingStats, error) {
	meetings, err := e.Repo.All(ctx)
	if err != nil {
		return models.MeetingStats{}, err
	}

	stats := models.MeetingStats{Total: len(meetings)}
	for _, m := range meetings {
		switch m.Status {
		case models.StatusScheduled, models.StatusConfirmed:
			stats.Upcoming++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func newMeetingLink() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return "https://meet.support.example.com/" + token
}
