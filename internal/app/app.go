package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/evoting-backend/internal/adapter/ledger"
	"github.com/heartmarshall/evoting-backend/internal/adapter/notify"
	"github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evoting-backend/internal/config"
	"github.com/heartmarshall/evoting-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the ledger, builds the services and serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("ledger_enabled", cfg.Ledger.Enabled()),
		slog.String("tally_source", cfg.Tally.Source),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return err
		}
	}

	gateway, closeLedger, err := openLedger(ctx, cfg.Ledger, logger)
	if err != nil {
		return err
	}
	defer closeLedger()

	var sender notify.Sender
	if cfg.Mail.Enabled() {
		sender = notify.NewSMTPSender(cfg.Mail, logger)
	} else {
		logger.Warn("mail relay not configured, notifications are only logged")
		sender = notify.NewLogSender(logger)
	}

	c, err := wire(cfg, pool, gateway, sender, logger)
	if err != nil {
		return err
	}
	defer c.limiter.Stop()

	server := newHTTPServer(cfg.Server, c.handler, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(gctx)
	})
	g.Go(func() error {
		return c.sweeper.Start(gctx)
	})

	err = g.Wait()
	c.sweeper.Stop()
	logger.Info("application stopped")
	return err
}

// ledgerPinger is a gateway that can also report reachability.
type ledgerPinger interface {
	ledger.Gateway
	Ping(ctx context.Context) error
}

// openLedger dials the configured node, or returns the offline gateway when
// no endpoint is set. The returned close func is never nil.
func openLedger(ctx context.Context, cfg config.LedgerConfig, logger *slog.Logger) (ledgerPinger, func(), error) {
	if !cfg.Enabled() {
		logger.Warn("ledger not configured, running database-only")
		return ledger.Offline{}, func() {}, nil
	}

	gw, closeFn, err := ledger.Dial(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return gw, closeFn, nil
}
