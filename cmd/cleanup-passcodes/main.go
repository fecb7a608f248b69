// Command cleanup-passcodes deletes expired one-time passcodes.
// The server sweeps periodically; this is for deployments that disable the
// in-process sweeper and schedule cleanup externally.
//
// Usage:
//
//	cleanup-passcodes
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	passcoderepo "github.com/heartmarshall/evoting-backend/internal/adapter/postgres/passcode"
	"github.com/heartmarshall/evoting-backend/internal/service/passcode"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sweeper := passcode.NewSweeper(logger, passcoderepo.New(pool), time.Hour)

	n := sweeper.SweepOnce(ctx)
	fmt.Printf("Deleted %d expired passcodes.\n", n)
}
