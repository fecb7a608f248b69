// Package passcode issues and verifies one-time passcodes that gate the
// vote receipt flow.
package passcode

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type passcodeRepo interface {
	Create(ctx context.Context, p domain.Passcode) error
	Consume(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID, codeHash string, now time.Time) (domain.Passcode, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type electionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Election, error)
}

type voterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Voter, error)
}

type eligibilityRepo interface {
	IsEligible(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error)
}

type participationRepo interface {
	HasParticipated(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error)
}

type nullifierDeriver interface {
	Derive(wallet string, electionID uuid.UUID) (string, error)
}

type notifier interface {
	Send(ctx context.Context, msg domain.Notification) error
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps groups the collaborators of Service.
type Deps struct {
	Passcodes     passcodeRepo
	Elections     electionRepo
	Voters        voterRepo
	Eligibility   eligibilityRepo
	Participation participationRepo
	Nullifier     nullifierDeriver
	Notifier      notifier
	Audit         auditRecorder
	Tx            txManager
}

// Service implements the one-time passcode authority.
type Service struct {
	log  *slog.Logger
	deps Deps
	ttl  time.Duration
	now  func() time.Time
}

func NewService(logger *slog.Logger, deps Deps, ttl time.Duration) *Service {
	return &Service{
		log:  logger.With("service", "passcode"),
		deps: deps,
		ttl:  ttl,
		now:  time.Now,
	}
}

// hashCode returns the SHA-256 hex digest stored in place of the code.
func hashCode(code string) string {
	h := sha256.Sum256([]byte(code))
	return hex.EncodeToString(h[:])
}
