package meetingRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-assistant/models"
)

func TestMemoryMeetingRepo_InsertAndGet(t *testing.T) {
	repo := NewMemoryMeetingRepo()
	ctx := context.Background()

	meeting := models.ScheduledMeeting{
		ID:          "m-1",
		RequesterID: "user-1",
		Date:        "2026-09-01",
		Time:        "10:00",
		Status:      models.StatusScheduled,
	}
	require.NoError(t, repo.Insert(ctx, meeting))

	got, err := repo.GetByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, meeting, *got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMeetingRepo_SetStatus(t *testing.T) {
	repo := NewMemoryMeetingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: "m-1", Status: models.StatusScheduled}))
	require.NoError(t, repo.SetStatus(ctx, "m-1", models.StatusCancelled))

	got, err := repo.GetByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)

	assert.ErrorIs(t, repo.SetStatus(ctx, "missing", models.StatusCancelled), ErrNotFound)
}

func TestMemoryMeetingRepo_AllPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryMeetingRepo()
	ctx := context.Background()

	for _, id := range []string{"m-3", "m-1", "m-2"} {
		require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: id}))
	}
	// Re-inserting must not duplicate the entry.
	require.NoError(t, repo.Insert(ctx, models.ScheduledMeeting{ID: "m-1", Description: "updated"}))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "m-3", all[0].ID)
	assert.Equal(t, "m-1", all[1].ID)
	assert.Equal(t, "m-2", all[2].ID)
	assert.Equal(t, "updated", all[1].Description)
}
