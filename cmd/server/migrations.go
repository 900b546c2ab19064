package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationTableName is the table goose uses to track applied versions.
const migrationTableName = "schema_migrations"

// runMigrations applies all pending schema migrations from the embedded
// filesystem. It is idempotent: a fully migrated database is a no-op.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	migrationLogger := logger.With(slog.String("component", "migrations"))

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(migrationTableName)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	startTime := time.Now()
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		migrationLogger.Warn("could not read migration version after apply", "error", err)
	} else {
		migrationLogger.Info("Database migrations up to date",
			"version", version,
			"duration_ms", time.Since(startTime).Milliseconds())
	}

	return nil
}
