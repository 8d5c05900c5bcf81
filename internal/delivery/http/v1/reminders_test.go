package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoroteev/go-coachly/internal/models"
	"github.com/dkoroteev/go-coachly/internal/services"
)

type reminderServiceStub struct {
	listFn   func(ctx context.Context, userID string) ([]models.Reminder, error)
	createFn func(ctx context.Context, params services.CreateReminderParams) (*models.Reminder, error)
	updateFn func(ctx context.Context, params services.UpdateReminderParams) (*models.Reminder, error)
	deleteFn func(ctx context.Context, userID, reminderID string) error
}

func (s *reminderServiceStub) ListReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	return s.listFn(ctx, userID)
}

func (s *reminderServiceStub) CreateReminder(ctx context.Context, params services.CreateReminderParams) (*models.Reminder, error) {
	return s.createFn(ctx, params)
}

func (s *reminderServiceStub) UpdateReminder(ctx context.Context, params services.UpdateReminderParams) (*models.Reminder, error) {
	return s.updateFn(ctx, params)
}

func (s *reminderServiceStub) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	return s.deleteFn(ctx, userID, reminderID)
}

func newTestRouter(t *testing.T, stub *reminderServiceStub) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &handlerImpl{
		logger:    zerolog.Nop(),
		reminders: stub,
	}

	router := gin.New()
	authed := router.Group("/api/v1", func(c *gin.Context) {
		c.Set(userIDCtxKey, "user-1")
	})
	authed.GET("/reminders", h.HandleListReminders)
	authed.POST("/reminders", h.HandleCreateReminder)
	authed.PATCH("/reminders/:id", h.HandleUpdateReminder)
	authed.DELETE("/reminders/:id", h.HandleDeleteReminder)
	authed.GET("/reminders/upcoming", h.HandleUpcomingReminders)
	authed.GET("/reminders/calendar", h.HandleReminderCalendar)
	return router
}

func TestHandleCreateReminder(t *testing.T) {
	t.Parallel()

	stub := &reminderServiceStub{
		createFn: func(_ context.Context, params services.CreateReminderParams) (*models.Reminder, error) {
			require.Equal(t, "user-1", params.UserID)
			if !models.IsValidNotificationMethod(params.NotificationMethod) {
				return nil, services.ErrInvalidNotificationMethod
			}
			return &models.Reminder{
				ID:                 "r-1",
				UserID:             params.UserID,
				Title:              params.Title,
				Date:               params.Date,
				Time:               params.Time,
				NotificationMethod: params.NotificationMethod,
				ReminderType:       params.ReminderType,
			}, nil
		},
	}
	router := newTestRouter(t, stub)

	t.Run("created", func(t *testing.T) {
		body := `{"title":"Content Planning","date":"2024-01-15","time":"09:00",` +
			`"notification_method":"email","reminder_type":"content-creation"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders", strings.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var got reminderResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "r-1", got.ID)
		assert.Equal(t, "Content Planning", got.Title)
		assert.False(t, got.Completed)
	})

	t.Run("missing required field is 400", func(t *testing.T) {
		body := `{"title":"No date","time":"09:00","notification_method":"email","reminder_type":"custom"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown method is 400", func(t *testing.T) {
		body := `{"title":"Bad","date":"2024-01-15","time":"09:00",` +
			`"notification_method":"pager","reminder_type":"custom"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDeleteReminder(t *testing.T) {
	t.Parallel()

	deleted := make(map[string]bool)
	stub := &reminderServiceStub{
		deleteFn: func(_ context.Context, userID, reminderID string) error {
			require.Equal(t, "user-1", userID)
			if reminderID != "r-1" {
				return services.ErrReminderNotFound
			}
			deleted[reminderID] = true
			return nil
		},
	}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/reminders/r-1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, deleted["r-1"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/reminders/r-404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListRemindersTimeoutMapsToServiceUnavailable(t *testing.T) {
	t.Parallel()

	stub := &reminderServiceStub{
		listFn: func(context.Context, string) ([]models.Reminder, error) {
			return nil, context.DeadlineExceeded
		},
	}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reminders", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestHandleUpcomingReminders(t *testing.T) {
	t.Parallel()

	stub := &reminderServiceStub{
		listFn: func(_ context.Context, userID string) ([]models.Reminder, error) {
			require.Equal(t, "user-1", userID)
			return []models.Reminder{
				{ID: "past", Date: "2020-01-01", Time: "09:00"},
				{ID: "future", Date: "2099-01-01", Time: "09:00"},
			}, nil
		},
	}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reminders/upcoming", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []reminderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "future", got[0].ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reminders/upcoming?limit=0", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleReminderCalendar(t *testing.T) {
	t.Parallel()

	stub := &reminderServiceStub{
		listFn: func(context.Context, string) ([]models.Reminder, error) {
			return []models.Reminder{
				{ID: "r-1", Title: "Content Planning", Date: "2024-01-15", Time: "09:00"},
			}, nil
		},
	}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reminders/calendar?year=2024&month=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got calendarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	// January 2024 starts on a Monday: one empty cell, then 31 days.
	require.Len(t, got.Cells, 32)
	assert.True(t, got.Cells[0].Empty)
	assert.Equal(t, 1, got.Cells[1].Day)

	day15 := got.Cells[15]
	require.Equal(t, 15, day15.Day)
	require.Len(t, day15.Reminders, 1)
	assert.Equal(t, "r-1", day15.Reminders[0].ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reminders/calendar?year=2024&month=13", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
