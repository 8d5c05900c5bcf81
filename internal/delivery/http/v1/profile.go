package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkoroteev/go-coachly/internal/models"
	"github.com/dkoroteev/go-coachly/internal/services"
)

type profileResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Age            string    `json:"age"`
	Gender         string    `json:"gender"`
	Job            string    `json:"job"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	AvatarURL      string    `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newProfileResponse(profile *models.Profile) profileResponse {
	return profileResponse{
		ID:             profile.ID,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Email:          profile.Email,
		Age:            profile.Age,
		Gender:         profile.Gender,
		Job:            profile.Job,
		WhatsAppNumber: profile.WhatsAppNumber,
		AvatarURL:      profile.AvatarURL,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

func (h *handlerImpl) HandleGetProfile(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

type updateProfileRequest struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Age            *string `json:"age,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Job            *string `json:"job,omitempty"`
	WhatsAppNumber *string `json:"whatsapp_number,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
}

func (h *handlerImpl) HandleUpdateProfile(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	profile, err := h.profiles.UpdateProfile(c, services.UpdateProfileParams{
		UserID:         userID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		Gender:         req.Gender,
		Job:            req.Job,
		WhatsAppNumber: req.WhatsAppNumber,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

type coachingPreferencesResponse struct {
	CoachingStyle   string   `json:"coaching_style"`
	MotivationStyle string   `json:"motivation_style"`
	PersonalityType string   `json:"personality_type"`
	WorkSchedule    string   `json:"work_schedule"`
	Hobbies         []string `json:"hobbies"`
}

func (h *handlerImpl) HandleGetCoachingPreferences(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	preferences, err := h.profiles.GetCoachingPreferences(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if preferences == nil {
		// Onboarding not done yet; an empty object beats a 404 here.
		c.JSON(http.StatusOK, coachingPreferencesResponse{Hobbies: []string{}})
		return
	}

	c.JSON(http.StatusOK, coachingPreferencesResponse{
		CoachingStyle:   preferences.CoachingStyle,
		MotivationStyle: preferences.MotivationStyle,
		PersonalityType: preferences.PersonalityType,
		WorkSchedule:    preferences.WorkSchedule,
		Hobbies:         preferences.Hobbies,
	})
}

type putCoachingPreferencesRequest struct {
	CoachingStyle   string   `json:"coaching_style"`
	MotivationStyle string   `json:"motivation_style"`
	PersonalityType string   `json:"personality_type"`
	WorkSchedule    string   `json:"work_schedule"`
	Hobbies         []string `json:"hobbies"`
}

func (h *handlerImpl) HandlePutCoachingPreferences(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req putCoachingPreferencesRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	preferences, err := h.profiles.UpsertCoachingPreferences(c, services.CoachingPreferencesParams{
		UserID:          userID,
		CoachingStyle:   req.CoachingStyle,
		MotivationStyle: req.MotivationStyle,
		PersonalityType: req.PersonalityType,
		WorkSchedule:    req.WorkSchedule,
		Hobbies:         req.Hobbies,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, coachingPreferencesResponse{
		CoachingStyle:   preferences.CoachingStyle,
		MotivationStyle: preferences.MotivationStyle,
		PersonalityType: preferences.PersonalityType,
		WorkSchedule:    preferences.WorkSchedule,
		Hobbies:         preferences.Hobbies,
	})
}

type notificationPreferencesResponse struct {
	NotificationMethods []string `json:"notification_methods"`
	ReminderFrequency   string   `json:"reminder_frequency"`
	PreferredTime       string   `json:"preferred_time"`
}

func (h *handlerImpl) HandleGetNotificationPreferences(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	preferences, err := h.profiles.GetNotificationPreferences(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if preferences == nil {
		c.JSON(http.StatusOK, notificationPreferencesResponse{NotificationMethods: []string{}})
		return
	}

	c.JSON(http.StatusOK, notificationPreferencesResponse{
		NotificationMethods: preferences.NotificationMethods,
		ReminderFrequency:   preferences.ReminderFrequency,
		PreferredTime:       preferences.PreferredTime,
	})
}

type putNotificationPreferencesRequest struct {
	NotificationMethods []string `json:"notification_methods" binding:"required"`
	ReminderFrequency   string   `json:"reminder_frequency"`
	PreferredTime       string   `json:"preferred_time"`
}

func (h *handlerImpl) HandlePutNotificationPreferences(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req putNotificationPreferencesRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	preferences, err := h.profiles.UpsertNotificationPreferences(c, services.NotificationPreferencesParams{
		UserID:              userID,
		NotificationMethods: req.NotificationMethods,
		ReminderFrequency:   req.ReminderFrequency,
		PreferredTime:       req.PreferredTime,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notificationPreferencesResponse{
		NotificationMethods: preferences.NotificationMethods,
		ReminderFrequency:   preferences.ReminderFrequency,
		PreferredTime:       preferences.PreferredTime,
	})
}

type statsResponse struct {
	TotalCheckIns     int        `json:"total_check_ins"`
	CurrentStreak     int        `json:"current_streak"`
	LastCheckIn       *time.Time `json:"last_check_in"`
	ProfileCompletion int        `json:"profile_completion"`
}

func (h *handlerImpl) HandleGetStats(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.profiles.GetStats(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		TotalCheckIns:     stats.TotalCheckIns,
		CurrentStreak:     stats.CurrentStreak,
		LastCheckIn:       stats.LastCheckIn,
		ProfileCompletion: stats.ProfileCompletion,
	})
}
