package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkoroteev/go-coachly/internal/models"
	"github.com/dkoroteev/go-coachly/internal/schedule"
	"github.com/dkoroteev/go-coachly/internal/services"
)

type reminderResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	NotificationMethod string    `json:"notification_method"`
	ReminderType       string    `json:"reminder_type"`
	Completed          bool      `json:"completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newReminderResponse(reminder *models.Reminder) reminderResponse {
	return reminderResponse{
		ID:                 reminder.ID,
		Title:              reminder.Title,
		Date:               reminder.Date,
		Time:               reminder.Time,
		NotificationMethod: reminder.NotificationMethod,
		ReminderType:       reminder.ReminderType,
		Completed:          reminder.Completed,
		CreatedAt:          reminder.CreatedAt,
		UpdatedAt:          reminder.UpdatedAt,
	}
}

func newReminderListResponse(reminders []models.Reminder) []reminderResponse {
	response := make([]reminderResponse, len(reminders))
	for i := range reminders {
		response[i] = newReminderResponse(&reminders[i])
	}
	return response
}

func (h *handlerImpl) HandleListReminders(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	reminders, err := h.reminders.ListReminders(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReminderListResponse(reminders))
}

type createReminderRequest struct {
	Title              string `json:"title" binding:"required,max=255"`
	Date               string `json:"date" binding:"required"`
	Time               string `json:"time" binding:"required"`
	NotificationMethod string `json:"notification_method" binding:"required"`
	ReminderType       string `json:"reminder_type" binding:"required"`
}

func (h *handlerImpl) HandleCreateReminder(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req createReminderRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	reminder, err := h.reminders.CreateReminder(c, services.CreateReminderParams{
		UserID:             userID,
		Title:              req.Title,
		Date:               req.Date,
		Time:               req.Time,
		NotificationMethod: req.NotificationMethod,
		ReminderType:       req.ReminderType,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReminderResponse(reminder))
}

type updateReminderRequest struct {
	Title              *string `json:"title,omitempty"`
	Date               *string `json:"date,omitempty"`
	Time               *string `json:"time,omitempty"`
	NotificationMethod *string `json:"notification_method,omitempty"`
	ReminderType       *string `json:"reminder_type,omitempty"`
	Completed          *bool   `json:"completed,omitempty"`
}

func (h *handlerImpl) HandleUpdateReminder(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	reminderID := c.Param("id")
	if reminderID == "" {
		h.logger.Warn().Msg("no reminder id provided")
		abort(c, newBadRequestError("reminder id is required"))
		return
	}

	var req updateReminderRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	reminder, err := h.reminders.UpdateReminder(c, services.UpdateReminderParams{
		ID:                 reminderID,
		UserID:             userID,
		Title:              req.Title,
		Date:               req.Date,
		Time:               req.Time,
		NotificationMethod: req.NotificationMethod,
		ReminderType:       req.ReminderType,
		Completed:          req.Completed,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReminderResponse(reminder))
}

func (h *handlerImpl) HandleDeleteReminder(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	reminderID := c.Param("id")
	if reminderID == "" {
		h.logger.Warn().Msg("no reminder id provided")
		abort(c, newBadRequestError("reminder id is required"))
		return
	}

	err := h.reminders.DeleteReminder(c, userID, reminderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleUpcomingReminders(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	limit := schedule.DefaultUpcomingLimit
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			abort(c, newBadRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	reminders, err := h.reminders.ListReminders(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	upcoming := schedule.Upcoming(reminders, time.Now(), limit)
	c.JSON(http.StatusOK, newReminderListResponse(upcoming))
}

type calendarCell struct {
	Day       int                `json:"day,omitempty"`
	Empty     bool               `json:"empty,omitempty"`
	Reminders []reminderResponse `json:"reminders,omitempty"`
}

type calendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []calendarCell `json:"cells"`
}

// HandleReminderCalendar renders one month as a 7-column grid with
// the user's reminders placed on their days.
func (h *handlerImpl) HandleReminderCalendar(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		abort(c, newBadRequestError("year must be a positive integer"))
		return
	}

	monthNumber, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNumber < 1 || monthNumber > 12 {
		abort(c, newBadRequestError("month must be between 1 and 12"))
		return
	}
	month := time.Month(monthNumber)

	reminders, err := h.reminders.ListReminders(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	grid := schedule.CalendarGrid(year, month)
	cells := make([]calendarCell, len(grid))
	for i, day := range grid {
		if day == 0 {
			cells[i] = calendarCell{Empty: true}
			continue
		}

		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		cells[i] = calendarCell{
			Day:       day,
			Reminders: newReminderListResponse(schedule.ByDate(reminders, date)),
		}
	}

	c.JSON(http.StatusOK, calendarResponse{
		Year:  year,
		Month: monthNumber,
		Cells: cells,
	})
}
