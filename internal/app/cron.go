package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dkoroteev/go-coachly/internal/services"
)

var globalCron *cron.Cron

// MustStartCron schedules the background maintenance jobs. For now that
// is a nightly purge of expired refresh sessions.
func MustStartCron() {
	globalCron = cron.New()

	sessionService := services.NewSessionService(globalLogger, globalPostgresPool)

	_, err := globalCron.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		purged, err := sessionService.DeleteExpiredSessions(ctx)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to purge expired sessions")
			return
		}

		globalLogger.Info().
			Int64("purged", purged).
			Msg("purged expired sessions")
	})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to schedule the session purge job")
		panic(err)
	}

	globalCron.Start()
	globalLogger.Info().Msg("started cron")
}

func StopCron() {
	ctx := globalCron.Stop()
	<-ctx.Done()
	globalLogger.Info().Msg("stopped cron")
}
