package election

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Get returns an election by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Election, error) {
	e, err := s.elections.GetByID(ctx, id)
	if err != nil {
		return domain.Election{}, fmt.Errorf("get election: %w", err)
	}
	return e, nil
}

// List returns all elections, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Election, error) {
	list, err := s.elections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list elections: %w", err)
	}
	return list, nil
}

// ListActive returns the elections currently accepting votes.
func (s *Service) ListActive(ctx context.Context) ([]domain.Election, error) {
	list, err := s.elections.ListByStatus(ctx, domain.ElectionStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active elections: %w", err)
	}
	return list, nil
}

// ListCandidates returns the roster of an election in chain-index order.
func (s *Service) ListCandidates(ctx context.Context, electionID uuid.UUID) ([]domain.Candidate, error) {
	if _, err := s.elections.GetByID(ctx, electionID); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	list, err := s.candidates.ListByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return list, nil
}
