package passcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const codeDigits = 6

var codeSpace = big.NewInt(1_000_000)

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}

// Request issues a fresh passcode for the pair and sends it to the voter.
// Codes issued earlier stay valid until used or expired. It returns the
// expiry of the new code.
func (s *Service) Request(ctx context.Context, voterID, electionID uuid.UUID) (time.Time, error) {
	e, err := s.deps.Elections.GetByID(ctx, electionID)
	if err != nil {
		return time.Time{}, fmt.Errorf("request passcode: %w", err)
	}
	if !e.IsActive() {
		return time.Time{}, fmt.Errorf("request passcode: %w", domain.ErrElectionInactive)
	}

	eligible, err := s.deps.Eligibility.IsEligible(ctx, voterID, electionID)
	if err != nil {
		return time.Time{}, fmt.Errorf("request passcode: %w", err)
	}
	if !eligible {
		return time.Time{}, fmt.Errorf("request passcode: %w", domain.ErrNotEligible)
	}

	voted, err := s.deps.Participation.HasParticipated(ctx, voterID, electionID)
	if err != nil {
		return time.Time{}, fmt.Errorf("request passcode: %w", err)
	}
	if voted {
		return time.Time{}, fmt.Errorf("request passcode: %w", domain.ErrAlreadyVoted)
	}

	v, err := s.deps.Voters.GetByID(ctx, voterID)
	if err != nil {
		return time.Time{}, fmt.Errorf("request passcode: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return time.Time{}, err
	}
	expiresAt := s.now().UTC().Add(s.ttl)

	err = s.deps.Passcodes.Create(ctx, domain.Passcode{
		ID:         uuid.New(),
		VoterID:    voterID,
		ElectionID: electionID,
		CodeHash:   hashCode(code),
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("request passcode: %w", err)
	}

	err = s.deps.Notifier.Send(ctx, domain.Notification{
		To:       v.Email,
		Subject:  "Your voting passcode",
		Template: domain.TemplatePasscode,
		Params: map[string]any{
			"Election":  e.Title,
			"Code":      code,
			"ExpiresAt": expiresAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		s.log.WarnContext(ctx, "passcode delivery failed",
			slog.String("voter_id", voterID.String()),
			slog.String("election_id", electionID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.deps.Audit.Record(ctx, domain.AuditEntry{
		Action:    domain.AuditPasscodeIssued,
		ActorID:   &voterID,
		SubjectID: &electionID,
		Detail:    map[string]any{"expires_at": expiresAt},
	})
	return expiresAt, nil
}
