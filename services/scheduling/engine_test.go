package scheduling

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	meetingRepo "support-assistant/database/repository/meeting"
	slotRepo "support-assistant/database/repository/slot"
	"support-assistant/models"
)

func newTestEngine() (*DefaultSchedulingEngine, slotRepo.Inventory) {
	inv := slotRepo.NewMemoryInventory(3, 9, 17)
	engine := &DefaultSchedulingEngine{
		Inventory: inv,
		Repo:      meetingRepo.NewMemoryMeetingRepo(),
		Logger:    zap.NewNop(),
	}
	return engine, inv
}

func validRequest(slot models.MeetingSlot) models.MeetingRequest {
	return models.MeetingRequest{
		RequesterID:     "user-1",
		Email:           "user@example.com",
		MeetingType:     models.MeetingDemo,
		Date:            slot.Date,
		Time:            slot.Time,
		DurationMinutes: 30,
		Description:     "product walkthrough",
		Urgency:         models.UrgencyMedium,
	}
}

func TestSchedule_Success(t *testing.T) {
	engine, inv := newTestEngine()
	slot := inv.Snapshot()[0]

	result := engine.Schedule(context.Background(), validRequest(slot))

	require.True(t, result.Success, result.Error)
	require.NotNil(t, result.Meeting)
	assert.NotEmpty(t, result.Meeting.ID)
	assert.Equal(t, models.StatusScheduled, result.Meeting.Status)
	assert.True(t, strings.HasPrefix(result.Meeting.MeetingLink, "https://meet.support.example.com/"))
	assert.False(t, result.Meeting.CreatedAt.IsZero())

	// The slot is no longer offered.
	for _, s := range inv.Query(slot.Date, "") {
		assert.NotEqual(t, slot.Time, s.Time)
	}

	// The record is retrievable through the engine.
	got, err := engine.GetStatus(context.Background(), result.Meeting.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, result.Meeting.ID, got.ID)
}

func TestSchedule_MissingFields(t *testing.T) {
	engine, inv := newTestEngine()
	slot := inv.Snapshot()[0]

	for _, mutate := range []func(*models.MeetingRequest){
		func(r *models.MeetingRequest) { r.RequesterID = "" },
		func(r *models.MeetingRequest) { r.Email = "" },
		func(r *models.MeetingRequest) { r.Date = "" },
		func(r *models.MeetingRequest) { r.Time = "" },
	} {
		req := validRequest(slot)
		mutate(&req)
		result := engine.Schedule(context.Background(), req)
		assert.False(t, result.Success)
		assert.Equal(t, ErrMsgMissingFields, result.Error)
	}
}

func TestSchedule_TakenSlotOffersAlternatives(t *testing.T) {
	engine, inv := newTestEngine()
	slot := inv.Snapshot()[0]

	first := engine.Schedule(context.Background(), validRequest(slot))
	require.True(t, first.Success)

	req := validRequest(slot)
	req.RequesterID = "user-2"
	second := engine.Schedule(context.Background(), req)

	assert.False(t, second.Success)
	assert.Equal(t, ErrMsgSlotUnavailable, second.Error)
	require.NotEmpty(t, second.AlternativeSlots)
	for _, alt := range second.AlternativeSlots {
		assert.Equal(t, slot.Date, alt.Date)
		assert.NotEqual(t, slot.Time, alt.Time)
	}
}

type failingRepo struct {
	meetingRepo.Repository
}

func (f failingRepo) Insert(ctx context.Context, meeting models.ScheduledMeeting) error {
	return errors.New("write timeout")
}

func TestSchedule_InsertFailureReleasesSlot(t *testing.T) {
	engine, inv := newTestEngine()
	engine.Repo = failingRepo{Repository: meetingRepo.NewMemoryMeetingRepo()}
	slot := inv.Snapshot()[0]

	result := engine.Schedule(context.Background(), validRequest(slot))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Failed to schedule meeting")

	// The claim was rolled back, so a working engine can book the slot.
	assert.True(t, inv.Book(slot.Date, slot.Time, "user-2"))
}

func TestSchedule_RecoversFromPanic(t *testing.T) {
	engine, inv := newTestEngine()
	engine.Repo = nil // forces a nil dereference after the slot claim
	slot := inv.Snapshot()[0]

	result := engine.Schedule(context.Background(), validRequest(slot))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Failed to schedule meeting")
}

func TestCancel(t *testing.T) {
	engine, inv := newTestEngine()
	slot := inv.Snapshot()[0]
	booked := engine.Schedule(context.Background(), validRequest(slot))
	require.True(t, booked.Success)
	meetingID := booked.Meeting.ID

	t.Run("unknown meeting", func(t *testing.T) {
		result := engine.Cancel(context.Background(), "missing", "user-1")
		assert.False(t, result.Success)
		assert.Equal(t, ErrMsgMeetingNotFound, result.Error)
	})

	t.Run("wrong requester mutates nothing", func(t *testing.T) {
		result := engine.Cancel(context.Background(), meetingID, "intruder")
		assert.False(t, result.Success)
		assert.Equal(t, ErrMsgUnauthorized, result.Error)

		got, err := engine.GetStatus(context.Background(), meetingID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusScheduled, got.Status)
		assert.False(t, inv.Book(slot.Date, slot.Time, "user-2"), "slot must stay booked")
	})

	t.Run("owner cancels and frees the slot", func(t *testing.T) {
		result := engine.Cancel(context.Background(), meetingID, "user-1")
		assert.True(t, result.Success)

		got, err := engine.GetStatus(context.Background(), meetingID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, got.Status)
		assert.True(t, inv.Book(slot.Date, slot.Time, "user-2"))
	})
}

func TestGetStatus_UnknownIsNilNil(t *testing.T) {
	engine, _ := newTestEngine()

	got, err := engine.GetStatus(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStats(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()
	repo := engine.Repo

	require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: "a", Status: models.StatusScheduled}))
	require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: "b", Status: models.StatusConfirmed}))
	require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: "c", Status: models.StatusCompleted}))
	require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: "d", Status: models.StatusCancelled}))
	require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: "e", Status: models.StatusCancelled}))

	stats, err := engine.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStats{Total: 5, Upcoming: 2, Completed: 1, Cancelled: 2}, stats)
}
