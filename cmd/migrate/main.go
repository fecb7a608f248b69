// Command migrate applies pending database migrations and exits.
//
// Usage:
//
//	migrate
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evoting-backend/migrations"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := postgres.Migrate(ctx, dsn, migrations.FS, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
