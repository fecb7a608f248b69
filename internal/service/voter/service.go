// Package voter handles voter registration, verification and election
// eligibility.
package voter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type voterRepo interface {
	Create(ctx context.Context, v domain.Voter) (domain.Voter, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Voter, error)
	ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.Voter, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, u domain.VerificationUpdate) (domain.Voter, error)
}

type electionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Election, error)
}

type eligibilityRepo interface {
	Create(ctx context.Context, e domain.Eligibility) error
	IsEligible(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error)
}

type ledger interface {
	RegisterVoter(ctx context.Context, wallet string) (string, error)
}

type notifier interface {
	Send(ctx context.Context, msg domain.Notification) error
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

// Service implements voter administration.
type Service struct {
	log         *slog.Logger
	voters      voterRepo
	elections   electionRepo
	eligibility eligibilityRepo
	ledger      ledger
	notifier    notifier
	audit       auditRecorder
}

func NewService(
	logger *slog.Logger,
	voters voterRepo,
	elections electionRepo,
	eligibility eligibilityRepo,
	ledger ledger,
	notifier notifier,
	audit auditRecorder,
) *Service {
	return &Service{
		log:         logger.With("service", "voter"),
		voters:      voters,
		elections:   elections,
		eligibility: eligibility,
		ledger:      ledger,
		notifier:    notifier,
		audit:       audit,
	}
}

func (s *Service) notify(ctx context.Context, msg domain.Notification) {
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.log.WarnContext(ctx, "notification failed",
			slog.String("template", msg.Template),
			slog.String("error", err.Error()),
		)
	}
}
