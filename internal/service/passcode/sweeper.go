package passcode

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

type expiredDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// Sweeper periodically deletes expired passcodes. Expiry is already enforced
// on consume; the sweep only bounds table growth.
type Sweeper struct {
	log      *slog.Logger
	repo     expiredDeleter
	interval time.Duration
	now      func() time.Time

	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
	running atomic.Bool
}

func NewSweeper(logger *slog.Logger, repo expiredDeleter, interval time.Duration) *Sweeper {
	return &Sweeper{
		log:      logger.With("component", "passcode_sweeper"),
		repo:     repo,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the sweep loop until ctx is cancelled or Stop is called.
// It blocks; run it in its own goroutine.
func (s *Sweeper) Start(ctx context.Context) error {
	s.running.Store(true)
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// Stop ends the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.once.Do(func() { close(s.stop) })
	if s.running.Load() {
		<-s.done
	}
}

// SweepOnce deletes expired codes and returns how many were removed.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	n, err := s.repo.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		s.log.WarnContext(ctx, "passcode sweep failed", slog.String("error", err.Error()))
		return 0
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired passcodes deleted", slog.Int("count", n))
	}
	return n
}
