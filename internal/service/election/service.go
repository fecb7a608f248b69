// Package election manages the election lifecycle and its candidate roster.
//
// PostgreSQL is authoritative. Writes to the external ledger are attempted
// outside transactions and their failures never fail the operation.
package election

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type electionRepo interface {
	Create(ctx context.Context, e domain.Election) (domain.Election, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Election, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Election, error)
	List(ctx context.Context) ([]domain.Election, error)
	ListByStatus(ctx context.Context, status domain.ElectionStatus) ([]domain.Election, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from domain.ElectionStatus, to domain.ElectionStatus) (domain.Election, error)
}

type candidateRepo interface {
	Create(ctx context.Context, c domain.Candidate) (domain.Candidate, error)
	ListByElection(ctx context.Context, electionID uuid.UUID) ([]domain.Candidate, error)
	MarkRegistered(ctx context.Context, id uuid.UUID, txID string) error
}

// ledger is the slice of the contract binding the lifecycle writes to.
type ledger interface {
	AddCandidate(ctx context.Context, name string, party string) (string, error)
	StartElection(ctx context.Context) (string, error)
	EndElection(ctx context.Context) (string, error)
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the election lifecycle.
type Service struct {
	log        *slog.Logger
	elections  electionRepo
	candidates candidateRepo
	ledger     ledger
	audit      auditRecorder
	tx         txManager
	now        func() time.Time
}

func NewService(
	logger *slog.Logger,
	elections electionRepo,
	candidates candidateRepo,
	ledger ledger,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "election"),
		elections:  elections,
		candidates: candidates,
		ledger:     ledger,
		audit:      audit,
		tx:         tx,
		now:        time.Now,
	}
}

// submit makes a best-effort ledger write. It returns nil on failure.
func (s *Service) submit(ctx context.Context, electionID uuid.UUID, fn string, call func(context.Context) (string, error)) *string {
	txID, err := call(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "ledger write failed",
			slog.String("election_id", electionID.String()),
			slog.String("fn", fn),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &txID
}
