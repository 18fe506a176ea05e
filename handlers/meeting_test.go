package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	meetingRepo "support-assistant/database/repository/meeting"
	slotRepo "support-assistant/database/repository/slot"
	"support-assistant/models"
	"support-assistant/services/scheduling"
)

func newMeetingRouter() (*gin.Engine, slotRepo.Inventory) {
	gin.SetMode(gin.TestMode)

	inv := slotRepo.NewMemoryInventory(3, 9, 17)
	engine := &scheduling.DefaultSchedulingEngine{
		Inventory: inv,
		Repo:      meetingRepo.NewMemoryMeetingRepo(),
		Logger:    zap.NewNop(),
	}
	h := NewMeetingHandler(engine, inv, zap.NewNop())

	router := gin.New()
	group := router.Group("/api/meetings")
	group.GET("/slots", h.QuerySlotsHandler)
	group.GET("/stats", h.StatsHandler)
	group.POST("", h.ScheduleHandler)
	group.GET("/:id", h.StatusHandler)
	group.DELETE("/:id", h.CancelHandler)
	return router, inv
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func scheduleBody(slot models.MeetingSlot) map[string]any {
	return map[string]any{
		"requesterId":     "user-1",
		"email":           "user@example.com",
		"meetingType":     "demo",
		"date":            slot.Date,
		"time":            slot.Time,
		"durationMinutes": 30,
		"urgency":         "medium",
	}
}

func TestQuerySlotsHandler(t *testing.T) {
	router, inv := newMeetingRouter()
	slot := inv.Snapshot()[0]

	w := doJSON(router, http.MethodGet, "/api/meetings/slots?date="+slot.Date, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slots []models.MeetingSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Slots)
	for _, s := range resp.Slots {
		assert.Equal(t, slot.Date, s.Date)
	}
}

func TestScheduleHandler(t *testing.T) {
	router, inv := newMeetingRouter()
	slot := inv.Snapshot()[0]

	w := doJSON(router, http.MethodPost, "/api/meetings", scheduleBody(slot))
	require.Equal(t, http.StatusOK, w.Code)

	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.True(t, result.Success, result.Error)
	require.NotNil(t, result.Meeting)
	assert.NotEmpty(t, result.Meeting.ID)

	// Same slot again: business failure in a 200 envelope, with alternatives.
	w = doJSON(router, http.MethodPost, "/api/meetings", scheduleBody(slot))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, scheduling.ErrMsgSlotUnavailable, result.Error)
	assert.NotEmpty(t, result.AlternativeSlots)
}

func TestScheduleHandler_MalformedJSON(t *testing.T) {
	router, _ := newMeetingRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/meetings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusHandler(t *testing.T) {
	router, inv := newMeetingRouter()
	slot := inv.Snapshot()[0]

	w := doJSON(router, http.MethodPost, "/api/meetings", scheduleBody(slot))
	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.True(t, result.Success)

	w = doJSON(router, http.MethodGet, "/api/meetings/"+result.Meeting.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var meeting models.ScheduledMeeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meeting))
	assert.Equal(t, result.Meeting.ID, meeting.ID)

	w = doJSON(router, http.MethodGet, "/api/meetings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Meeting not found"}`, w.Body.String())
}

func TestCancelHandler(t *testing.T) {
	router, inv := newMeetingRouter()
	slot := inv.Snapshot()[0]

	w := doJSON(router, http.MethodPost, "/api/meetings", scheduleBody(slot))
	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.True(t, result.Success)
	id := result.Meeting.ID

	tests := []struct {
		name        string
		path        string
		requesterID string
		wantStatus  int
	}{
		{"unknown meeting", "/api/meetings/missing", "user-1", http.StatusNotFound},
		{"wrong requester", "/api/meetings/" + id, "intruder", http.StatusForbidden},
		{"owner", "/api/meetings/" + id, "user-1", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodDelete, tt.path, map[string]any{"requesterId": tt.requesterID})
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestStatsHandler(t *testing.T) {
	router, inv := newMeetingRouter()

	for i, slot := range inv.Snapshot()[:3] {
		body := scheduleBody(slot)
		body["requesterId"] = fmt.Sprintf("user-%d", i)
		w := doJSON(router, http.MethodPost, "/api/meetings", body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/meetings/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.MeetingStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Upcoming)
}
