package voter

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const voterCodePrefix = "VTR-"

func newVoterCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate voter code: %w", err)
	}
	return voterCodePrefix + strings.ToUpper(hex.EncodeToString(b)), nil
}

// Approve verifies a PENDING voter and issues a voter code. A linked wallet
// is whitelisted on the ledger on a best-effort basis.
func (s *Service) Approve(ctx context.Context, voterID, actorID uuid.UUID) (domain.Voter, error) {
	code, err := newVoterCode()
	if err != nil {
		return domain.Voter{}, err
	}

	v, err := s.voters.UpdateVerification(ctx, voterID, domain.VerificationUpdate{
		From:      domain.VerificationStatusPending,
		To:        domain.VerificationStatusVerified,
		VoterCode: &code,
	})
	if err != nil {
		return domain.Voter{}, fmt.Errorf("approve voter: %w", err)
	}

	var txID *string
	if v.HasWallet() {
		id, err := s.ledger.RegisterVoter(ctx, *v.WalletAddress)
		if err != nil {
			s.log.WarnContext(ctx, "ledger write failed",
				slog.String("voter_id", v.ID.String()),
				slog.String("fn", "registerVoter"),
				slog.String("error", err.Error()),
			)
		} else {
			txID = &id
		}
	}

	s.notify(ctx, domain.Notification{
		To:       v.Email,
		Subject:  "Voter registration approved",
		Template: domain.TemplateVoterApproved,
		Params:   map[string]any{"Name": v.FullName, "VoterCode": code},
	})

	s.audit.Record(ctx, domain.AuditEntry{
		Action:       domain.AuditVoterApproved,
		ActorID:      &actorID,
		SubjectID:    &v.ID,
		ExternalTxID: txID,
		Detail:       map[string]any{"voter_code": code},
	})
	s.log.InfoContext(ctx, "voter approved", slog.String("voter_id", v.ID.String()))
	return v, nil
}

// Reject marks a PENDING voter as REJECTED with a reason.
func (s *Service) Reject(ctx context.Context, voterID uuid.UUID, reason string, actorID uuid.UUID) (domain.Voter, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.Voter{}, domain.NewValidationError("reason", "required")
	}

	v, err := s.voters.UpdateVerification(ctx, voterID, domain.VerificationUpdate{
		From:   domain.VerificationStatusPending,
		To:     domain.VerificationStatusRejected,
		Reason: &reason,
	})
	if err != nil {
		return domain.Voter{}, fmt.Errorf("reject voter: %w", err)
	}

	s.notify(ctx, domain.Notification{
		To:       v.Email,
		Subject:  "Voter registration rejected",
		Template: domain.TemplateVoterRejected,
		Params:   map[string]any{"Name": v.FullName, "Reason": reason},
	})

	s.audit.Record(ctx, domain.AuditEntry{
		Action:    domain.AuditVoterRejected,
		ActorID:   &actorID,
		SubjectID: &v.ID,
		Detail:    map[string]any{"reason": reason},
	})
	s.log.InfoContext(ctx, "voter rejected", slog.String("voter_id", v.ID.String()))
	return v, nil
}
