package meetingRepo

import (
	"context"
	"sync"

	"support-assistant/models"
)

// memoryMeetingRepo is the default store when no database is
// configured. Records live for the process lifetime only.
type memoryMeetingRepo struct {
	mu       sync.RWMutex
	order    []string
	meetings map[string]models.ScheduledMeeting
}

// NewMemoryMeetingRepo returns an in-memory Repository.
func NewMemoryMeetingRepo() Repository {
	return &memoryMeetingRepo{
		meetings: make(map[string]models.ScheduledMeeting),
	}
}

func (r *memoryMeetingRepo) Insert(ctx context.Context, meeting models.ScheduledMeeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.meetings[meeting.ID]; !exists {
		r.order = append(r.order, meeting.ID)
	}
	r.meetings[meeting.ID] = meeting
	return nil
}

func (r *memoryMeetingRepo) GetByID(ctx context.Context, id string) (*models.ScheduledMeeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &meeting, nil
}

func (r *memoryMeetingRepo) SetStatus(ctx context.Context, id string, status models.MeetingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return ErrNotFound
	}
	meeting.Status = status
	r.meetings[id] = meeting
	return nil
}

func (r *memoryMeetingRepo) All(ctx context.Context) ([]models.ScheduledMeeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ScheduledMeeting, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.meetings[id])
	}
	return out, nil
}
