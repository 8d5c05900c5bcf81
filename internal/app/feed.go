package app

import (
	"context"

	"github.com/dkoroteev/go-coachly/internal/realtime"
)

var (
	globalReminderFeed *realtime.Feed
	stopReminderFeed   context.CancelFunc
)

func MustStartReminderFeed() {
	globalReminderFeed = realtime.NewFeed(globalLogger, globalPostgresPool)

	ctx, cancel := context.WithCancel(context.Background())
	stopReminderFeed = cancel
	go globalReminderFeed.Run(ctx)

	globalLogger.Info().Msg("started reminder feed")
}

func StopReminderFeed() {
	stopReminderFeed()
	globalLogger.Info().Msg("stopping reminder feed")
}
