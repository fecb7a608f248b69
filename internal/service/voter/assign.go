package voter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Assign makes a VERIFIED voter eligible for an election.
func (s *Service) Assign(ctx context.Context, voterID, electionID, actorID uuid.UUID) error {
	v, err := s.voters.GetByID(ctx, voterID)
	if err != nil {
		return fmt.Errorf("assign voter: %w", err)
	}
	if _, err := s.elections.GetByID(ctx, electionID); err != nil {
		return fmt.Errorf("assign voter: %w", err)
	}

	eligible, err := s.eligibility.IsEligible(ctx, voterID, electionID)
	if err != nil {
		return fmt.Errorf("assign voter: %w", err)
	}
	if eligible {
		return fmt.Errorf("assign voter %s: %w", voterID, domain.ErrAlreadyAssigned)
	}
	if !v.IsVerified() {
		return fmt.Errorf("assign voter %s: status is %s: %w", voterID, v.VerificationStatus, domain.ErrPrecondition)
	}

	err = s.eligibility.Create(ctx, domain.Eligibility{
		ID:         uuid.New(),
		VoterID:    voterID,
		ElectionID: electionID,
		Eligible:   true,
		AssignedBy: &actorID,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("assign voter %s: %w", voterID, domain.ErrAlreadyAssigned)
	}
	if err != nil {
		return fmt.Errorf("assign voter: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:    domain.AuditVoterAssigned,
		ActorID:   &actorID,
		SubjectID: &voterID,
		Detail:    map[string]any{"election_id": electionID.String()},
	})
	s.log.InfoContext(ctx, "voter assigned",
		slog.String("voter_id", voterID.String()),
		slog.String("election_id", electionID.String()),
	)
	return nil
}
