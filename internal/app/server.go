package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/evoting-backend/internal/config"
)

// httpServer runs an *http.Server until its context ends.
type httpServer struct {
	srv *http.Server
	cfg config.ServerConfig
	log *slog.Logger
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler, log *slog.Logger) *httpServer {
	return &httpServer{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		cfg: cfg,
		log: log,
	}
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for at most the configured shutdown timeout.
func (s *httpServer) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	s.log.InfoContext(ctx, "http server listening", slog.String("addr", s.srv.Addr))
	go func() {
		serveErr <- s.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.log.Info("http server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
