// Package tally counts an election from the configured ledger.
package tally

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type electionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Election, error)
}

type candidateRepo interface {
	ListByElection(ctx context.Context, electionID uuid.UUID) ([]domain.Candidate, error)
}

// VoteCounter returns per-candidate counts for an election.
type VoteCounter interface {
	Count(ctx context.Context, electionID uuid.UUID, candidates []domain.Candidate) (map[uuid.UUID]int64, error)
}

// Service implements the tally engine.
type Service struct {
	log        *slog.Logger
	elections  electionRepo
	candidates candidateRepo
	counter    VoteCounter
}

func NewService(logger *slog.Logger, elections electionRepo, candidates candidateRepo, counter VoteCounter) *Service {
	return &Service{
		log:        logger.With("service", "tally"),
		elections:  elections,
		candidates: candidates,
		counter:    counter,
	}
}

// Tally counts the election. Candidates are ordered by votes, descending;
// ties keep roster order.
func (s *Service) Tally(ctx context.Context, electionID uuid.UUID) (domain.TallyResult, error) {
	e, err := s.elections.GetByID(ctx, electionID)
	if err != nil {
		return domain.TallyResult{}, fmt.Errorf("tally: %w", err)
	}

	roster, err := s.candidates.ListByElection(ctx, electionID)
	if err != nil {
		return domain.TallyResult{}, fmt.Errorf("tally: %w", err)
	}

	counts, err := s.counter.Count(ctx, electionID, roster)
	if err != nil {
		return domain.TallyResult{}, fmt.Errorf("tally %s: %w", electionID, err)
	}

	return build(e, roster, counts), nil
}

func build(e domain.Election, roster []domain.Candidate, counts map[uuid.UUID]int64) domain.TallyResult {
	res := domain.TallyResult{
		ElectionID: e.ID,
		Title:      e.Title,
		Status:     e.Status,
		Candidates: make([]domain.CandidateResult, 0, len(roster)),
	}

	for _, c := range roster {
		res.TotalVotes += counts[c.ID]
	}
	for _, c := range roster {
		n := counts[c.ID]
		res.Candidates = append(res.Candidates, domain.CandidateResult{
			CandidateID: c.ID,
			Name:        c.Name,
			Party:       c.Party,
			ChainIndex:  c.ChainIndex,
			Votes:       n,
			Percentage:  percentage(n, res.TotalVotes),
		})
	}

	sort.SliceStable(res.Candidates, func(i, j int) bool {
		return res.Candidates[i].Votes > res.Candidates[j].Votes
	})
	return res
}

// percentage rounds to one decimal place.
func percentage(n, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)*1000/float64(total)) / 10
}
