package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/dkoroteev/go-coachly/internal/realtime"
	"github.com/dkoroteev/go-coachly/internal/services"
)

type Handler interface {
	HandleLogin(c *gin.Context)
	HandleRefresh(c *gin.Context)
	HandleRegister(c *gin.Context)
	HandleLogout(c *gin.Context)
	HandleMe(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleListReminders(c *gin.Context)
	HandleCreateReminder(c *gin.Context)
	HandleUpdateReminder(c *gin.Context)
	HandleDeleteReminder(c *gin.Context)
	HandleUpcomingReminders(c *gin.Context)
	HandleReminderCalendar(c *gin.Context)
	HandleReminderEvents(c *gin.Context)

	HandleListGoals(c *gin.Context)
	HandleCreateGoal(c *gin.Context)
	HandleUpdateGoal(c *gin.Context)
	HandleDeleteGoal(c *gin.Context)

	HandleListCheckIns(c *gin.Context)
	HandleCreateCheckIn(c *gin.Context)
	HandleGetMessages(c *gin.Context)
	HandleAddMessage(c *gin.Context)

	HandleGetProfile(c *gin.Context)
	HandleUpdateProfile(c *gin.Context)
	HandleGetCoachingPreferences(c *gin.Context)
	HandlePutCoachingPreferences(c *gin.Context)
	HandleGetNotificationPreferences(c *gin.Context)
	HandlePutNotificationPreferences(c *gin.Context)
	HandleGetStats(c *gin.Context)

	HandleListPlans(c *gin.Context)
}

type handlerImpl struct {
	logger    zerolog.Logger
	auth      services.AuthService
	sessions  services.SessionService
	reminders services.ReminderService
	goals     services.GoalService
	checkIns  services.CheckInService
	profiles  services.ProfileService
	feed      *realtime.Feed
	upgrader  websocket.Upgrader
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	sessionService services.SessionService,
	reminderService services.ReminderService,
	goalService services.GoalService,
	checkInService services.CheckInService,
	profileService services.ProfileService,
	feed *realtime.Feed,
) Handler {
	return &handlerImpl{
		logger:    logger,
		auth:      authService,
		sessions:  sessionService,
		reminders: reminderService,
		goals:     goalService,
		checkIns:  checkInService,
		profiles:  profileService,
		feed:      feed,
		upgrader: websocket.Upgrader{
			// Token auth already gates the endpoint; the API serves
			// browser clients from arbitrary origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}
