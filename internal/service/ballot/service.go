// Package ballot casts and records votes. The vote row and the participation
// row commit together in PostgreSQL; the external ledger write is
// best-effort and happens before the transaction.
package ballot

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type electionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Election, error)
}

type candidateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Candidate, error)
}

type voterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Voter, error)
}

type eligibilityRepo interface {
	IsEligible(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error)
}

type voteRepo interface {
	Record(ctx context.Context, voterID uuid.UUID, v domain.Vote) (domain.Vote, error)
	HasParticipated(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error)
	NullifierUsed(ctx context.Context, nullifier string) (bool, error)
	ListParticipations(ctx context.Context, voterID uuid.UUID) ([]domain.VoteRecord, error)
}

type nullifierDeriver interface {
	Derive(wallet string, electionID uuid.UUID) (string, error)
	DeriveForVoter(voterID uuid.UUID, electionID uuid.UUID) string
}

type ledger interface {
	Vote(ctx context.Context, chainIndex int, nullifier string) (string, error)
	Confirmed(ctx context.Context, txID string) (bool, error)
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options controls how votes are relayed and stored.
type Options struct {
	// RelayToLedger submits direct casts to the ledger before storing them.
	RelayToLedger bool
	// AnonymizeVotes stores votes without the voter id.
	AnonymizeVotes bool
	// PlaceholderPrefix marks external tx ids of votes the ledger never saw.
	PlaceholderPrefix string
}

// Deps groups the collaborators of Service.
type Deps struct {
	Elections   electionRepo
	Candidates  candidateRepo
	Voters      voterRepo
	Eligibility eligibilityRepo
	Votes       voteRepo
	Nullifier   nullifierDeriver
	Ledger      ledger
	Audit       auditRecorder
	Tx          txManager
}

// Service implements vote casting and recording.
type Service struct {
	log  *slog.Logger
	deps Deps
	opts Options
	now  func() time.Time
}

func NewService(logger *slog.Logger, deps Deps, opts Options) *Service {
	if opts.PlaceholderPrefix == "" {
		opts.PlaceholderPrefix = "local-"
	}
	return &Service{
		log:  logger.With("service", "ballot"),
		deps: deps,
		opts: opts,
		now:  time.Now,
	}
}

// Receipt is what a voter gets back for a stored vote.
type Receipt struct {
	VoteID       uuid.UUID
	ElectionID   uuid.UUID
	ExternalTxID string
	Nullifier    string
	OnLedger     bool
	CastAt       time.Time
}
