// Package audit records and lists append-only audit facts.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type auditRepo interface {
	Create(ctx context.Context, entry domain.AuditEntry) error
	List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error)
}

// Service is the audit sink. Recording never fails the caller.
type Service struct {
	log  *slog.Logger
	repo auditRepo
	now  func() time.Time
}

func NewService(logger *slog.Logger, repo auditRepo) *Service {
	return &Service{
		log:  logger.With("service", "audit"),
		repo: repo,
		now:  time.Now,
	}
}

// Record persists entry. Failures are logged and dropped.
func (s *Service) Record(ctx context.Context, entry domain.AuditEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.ErrorContext(ctx, "audit record failed",
			slog.String("action", string(entry.Action)),
			slog.String("error", err.Error()),
		)
	}
}

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalize() (Page, error) {
	if p.Offset < 0 {
		return p, domain.NewValidationError("offset", "must not be negative")
	}
	switch {
	case p.Limit <= 0:
		p.Limit = defaultLimit
	case p.Limit > maxLimit:
		p.Limit = maxLimit
	}
	return p, nil
}

// List returns audit entries, newest first.
func (s *Service) List(ctx context.Context, page Page) ([]domain.AuditEntry, error) {
	page, err := page.normalize()
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return entries, nil
}

// ListTransactions returns entries that carry an external transaction id.
func (s *Service) ListTransactions(ctx context.Context, page Page) ([]domain.AuditEntry, error) {
	page, err := page.normalize()
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListTransactions(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger transactions: %w", err)
	}
	return entries, nil
}
