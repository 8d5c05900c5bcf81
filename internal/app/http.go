package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dkoroteev/go-coachly/internal/config"
	v1 "github.com/dkoroteev/go-coachly/internal/delivery/http/v1"
	"github.com/dkoroteev/go-coachly/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	cfg := config.Global()
	jwtCfg := cfg.JWT
	queryTimeout := cfg.Postgres.QueryTimeout

	authService := services.NewAuthService(
		globalLogger,
		globalPostgresPool,
		jwtCfg.Issuer,
		[]byte(jwtCfg.SigningKey),
		jwtCfg.AccessTokenTTL,
		jwtCfg.RefreshTokenTTL,
	)
	sessionService := services.NewSessionService(globalLogger, globalPostgresPool)
	reminderService := services.NewReminderService(globalLogger, globalPostgresPool, queryTimeout)
	goalService := services.NewGoalService(globalLogger, globalPostgresPool, queryTimeout)
	checkInService := services.NewCheckInService(globalLogger, globalPostgresPool, queryTimeout)
	profileService := services.NewProfileService(globalLogger, globalPostgresPool, queryTimeout)

	v1Handler := v1.New(
		globalLogger,
		authService,
		sessionService,
		reminderService,
		goalService,
		checkInService,
		profileService,
		globalReminderFeed,
	)
	router = router.Group("/api/v1")

	router.GET("/plans", v1Handler.HandleListPlans)

	authRouter := router.Group("/auth")
	authRouter.POST("/login", v1Handler.HandleLogin)
	authRouter.POST("/refresh", v1Handler.HandleRefresh)
	authRouter.POST("/register", v1Handler.HandleRegister)
	authRouter.POST("/logout", v1Handler.HandleAuthMiddleware, v1Handler.HandleLogout)

	authedRouter := router.Group("", v1Handler.HandleAuthMiddleware)
	authedRouter.GET("/me", v1Handler.HandleMe)

	remindersRouter := authedRouter.Group("/reminders")
	remindersRouter.GET("", v1Handler.HandleListReminders)
	remindersRouter.POST("", v1Handler.HandleCreateReminder)
	remindersRouter.GET("/upcoming", v1Handler.HandleUpcomingReminders)
	remindersRouter.GET("/calendar", v1Handler.HandleReminderCalendar)
	remindersRouter.GET("/events", v1Handler.HandleReminderEvents)
	remindersRouter.PATCH("/:id", v1Handler.HandleUpdateReminder)
	remindersRouter.DELETE("/:id", v1Handler.HandleDeleteReminder)

	goalsRouter := authedRouter.Group("/goals")
	goalsRouter.GET("", v1Handler.HandleListGoals)
	goalsRouter.POST("", v1Handler.HandleCreateGoal)
	goalsRouter.PATCH("/:id", v1Handler.HandleUpdateGoal)
	goalsRouter.DELETE("/:id", v1Handler.HandleDeleteGoal)

	checkInsRouter := authedRouter.Group("/check-ins")
	checkInsRouter.GET("", v1Handler.HandleListCheckIns)
	checkInsRouter.POST("", v1Handler.HandleCreateCheckIn)
	checkInsRouter.GET("/:id/messages", v1Handler.HandleGetMessages)
	checkInsRouter.POST("/:id/messages", v1Handler.HandleAddMessage)

	profileRouter := authedRouter.Group("/profile")
	profileRouter.GET("", v1Handler.HandleGetProfile)
	profileRouter.PATCH("", v1Handler.HandleUpdateProfile)
	profileRouter.GET("/coaching", v1Handler.HandleGetCoachingPreferences)
	profileRouter.PUT("/coaching", v1Handler.HandlePutCoachingPreferences)
	profileRouter.GET("/notifications", v1Handler.HandleGetNotificationPreferences)
	profileRouter.PUT("/notifications", v1Handler.HandlePutNotificationPreferences)

	authedRouter.GET("/stats", v1Handler.HandleGetStats)
}
