package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studytrack/model"
	"studytrack/usecase"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "user-1"

type stubEventStore struct {
	events []*model.StudyEvent
}

func (s *stubEventStore) GetUserEvents(ctx context.Context, userID string) ([]*model.StudyEvent, error) {
	var out []*model.StudyEvent
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEventStore) GetEventByID(ctx context.Context, userID string, eventID string) (*model.StudyEvent, error) {
	for _, e := range s.events {
		if e.EventID == eventID && e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (s *stubEventStore) CountUserEvents(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, e := range s.events {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *stubEventStore) CreateEvent(ctx context.Context, event *model.StudyEvent) error {
	s.events = append(s.events, event)
	return nil
}

func (s *stubEventStore) UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.StudyEvent) error {
	return nil
}

type stubCompletionStore struct {
	records []*model.EventCompletion
}

func (s *stubCompletionStore) GetCompletionsInRange(ctx context.Context, eventIDs []string, start, end time.Time) ([]*model.EventCompletion, error) {
	return s.records, nil
}

func (s *stubCompletionStore) FindForDay(ctx context.Context, eventID string, day time.Time) (*model.EventCompletion, error) {
	for _, r := range s.records {
		if r.EventID == eventID && r.Date.Equal(day) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *stubCompletionStore) CreateCompletion(ctx context.Context, record *model.EventCompletion) error {
	s.records = append(s.records, record)
	return nil
}

func (s *stubCompletionStore) SetCompleted(ctx context.Context, completionID string) error {
	for _, r := range s.records {
		if r.CompletionID == completionID {
			r.Completed = true
		}
	}
	return nil
}

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupTestRouter(events *stubEventStore, completions *stubCompletionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	scheduleService := usecase.NewScheduleService(events, completions)
	scheduleService.Clock = utils.FixedClock{Fixed: time.Date(2024, time.March, 15, 8, 0, 0, 0, time.Local)}
	completionsService := usecase.NewCompletionsService(events, completions)
	eventsService := usecase.NewEventsService(events)

	scheduleHandler := NewScheduleHandler(scheduleService)
	eventsHandler := NewEventsHandler(eventsService, completionsService)

	router := gin.New()
	api := router.Group("/api", authAs(testUser))
	api.GET("/schedule/", scheduleHandler.GetMonthSchedule)
	api.GET("/schedule/today", scheduleHandler.GetTodaySchedule)
	api.POST("/events/", eventsHandler.CreateEvent)
	api.POST("/events/:id/complete", eventsHandler.CompleteEvent)
	return router
}

func TestGetMonthSchedule(t *testing.T) {
	events := &stubEventStore{events: []*model.StudyEvent{
		{EventID: "e1", UserID: testUser, Title: "Past papers", IsRecurring: true,
			Recurrence: model.RecurrenceWeekly, DaysOfWeek: []int{1, 3, 5}},
	}}
	router := setupTestRouter(events, &stubCompletionStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/?month=2024-03", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			Date      string `json:"date"`
			Completed bool   `json:"completed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 13)
	assert.Equal(t, "2024-03-01", body.Data[0].Date)
}

func TestGetMonthScheduleBadToken(t *testing.T) {
	router := setupTestRouter(&stubEventStore{}, &stubCompletionStore{})

	for _, url := range []string{"/api/schedule/", "/api/schedule/?month=bogus"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "url %s", url)
	}
}

func TestGetTodaySchedule(t *testing.T) {
	events := &stubEventStore{events: []*model.StudyEvent{
		{EventID: "e1", UserID: testUser, Title: "Flashcards", IsRecurring: true, Recurrence: model.RecurrenceDaily},
	}}
	router := setupTestRouter(events, &stubCompletionStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule/today", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			Date string `json:"date"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "2024-03-15", body.Data[0].Date)
}

func TestCompleteEvent(t *testing.T) {
	events := &stubEventStore{events: []*model.StudyEvent{
		{EventID: "e1", UserID: testUser, Title: "Flashcards", IsRecurring: true, Recurrence: model.RecurrenceDaily},
	}}
	completions := &stubCompletionStore{}
	router := setupTestRouter(events, completions)

	t.Run("marks the given day", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events/e1/complete",
			strings.NewReader(`{"date":"2024-03-10T00:00:00+00:00"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, completions.records, 1)
		assert.True(t, completions.records[0].Completed)
	})

	t.Run("unknown event is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events/missing/complete", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateEventValidationErrors(t *testing.T) {
	router := setupTestRouter(&stubEventStore{}, &stubCompletionStore{})

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"is_recurring":true,"recurrence":"DAILY"}`},
		{"weekly without days", `{"title":"Past papers","is_recurring":true,"recurrence":"WEEKLY"}`},
		{"unknown recurrence", `{"title":"Past papers","is_recurring":true,"recurrence":"MONTHLY"}`},
		{"one-off without date", `{"title":"Mock exam"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/events/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
