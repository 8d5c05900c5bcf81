package main

import "github.com/dkoroteev/go-coachly/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()

	app.MustMigratePostgres()

	app.MustStartReminderFeed()
	defer app.StopReminderFeed()

	app.MustStartCron()
	defer app.StopCron()

	app.MustListenAndServeHTTP()
}
