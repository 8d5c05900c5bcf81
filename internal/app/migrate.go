package app

import (
	"embed"

	"github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// MustMigratePostgres applies the embedded schema migrations on the
// already-connected pool. sql-migrate wants a database/sql handle, so
// one is borrowed from the pgx pool for the duration.
func MustMigratePostgres() {
	db := stdlib.OpenDBFromPool(globalPostgresPool)
	defer func() { _ = db.Close() }()

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: embeddedMigrations,
		Root:       "migrations",
	}

	applied, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to apply migrations")
		panic(err)
	}
	globalLogger.Info().
		Int("applied", applied).
		Msg("applied migrations")
}
