package ballot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// precheck runs the shared admission checks in order: active election,
// eligibility, no prior participation, candidate of this election.
// The database constraints remain the final word on uniqueness.
func (s *Service) precheck(ctx context.Context, voterID, electionID, candidateID uuid.UUID) (domain.Election, domain.Candidate, error) {
	e, err := s.deps.Elections.GetByID(ctx, electionID)
	if err != nil {
		return domain.Election{}, domain.Candidate{}, err
	}
	if !e.IsActive() {
		return domain.Election{}, domain.Candidate{}, domain.ErrElectionInactive
	}

	eligible, err := s.deps.Eligibility.IsEligible(ctx, voterID, electionID)
	if err != nil {
		return domain.Election{}, domain.Candidate{}, err
	}
	if !eligible {
		return domain.Election{}, domain.Candidate{}, domain.ErrNotEligible
	}

	voted, err := s.deps.Votes.HasParticipated(ctx, voterID, electionID)
	if err != nil {
		return domain.Election{}, domain.Candidate{}, err
	}
	if voted {
		return domain.Election{}, domain.Candidate{}, domain.ErrAlreadyVoted
	}

	c, err := s.deps.Candidates.GetByID(ctx, candidateID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && c.ElectionID != electionID) {
		return domain.Election{}, domain.Candidate{}, domain.NewValidationError("candidate_id", "not a candidate of this election")
	}
	if err != nil {
		return domain.Election{}, domain.Candidate{}, err
	}
	return e, c, nil
}

func (s *Service) checkNullifier(ctx context.Context, nullifier string) error {
	used, err := s.deps.Votes.NullifierUsed(ctx, nullifier)
	if err != nil {
		return err
	}
	if used {
		return fmt.Errorf("nullifier %s: %w", nullifier, domain.ErrNullifierUsed)
	}
	return nil
}
