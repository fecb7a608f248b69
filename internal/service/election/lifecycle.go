package election

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Start moves a PENDING election with at least one candidate to ACTIVE.
// Unregistered candidates and the start itself are pushed to the ledger
// first; the status change commits whatever the ledger said.
func (s *Service) Start(ctx context.Context, electionID, actorID uuid.UUID) (domain.Election, error) {
	e, err := s.elections.GetByID(ctx, electionID)
	if err != nil {
		return domain.Election{}, fmt.Errorf("start election: %w", err)
	}
	if !e.Status.CanTransitionTo(domain.ElectionStatusActive) {
		return domain.Election{}, fmt.Errorf("start election %s: status is %s: %w", electionID, e.Status, domain.ErrState)
	}

	candidates, err := s.candidates.ListByElection(ctx, electionID)
	if err != nil {
		return domain.Election{}, fmt.Errorf("start election: %w", err)
	}
	if len(candidates) == 0 {
		return domain.Election{}, fmt.Errorf("start election %s: no candidates: %w", electionID, domain.ErrPrecondition)
	}

	type registration struct {
		candidateID uuid.UUID
		txID        string
	}
	var registered []registration
	for _, c := range candidates {
		if c.ChainRegistered {
			continue
		}
		txID := s.submit(ctx, electionID, "addCandidate", func(ctx context.Context) (string, error) {
			return s.ledger.AddCandidate(ctx, c.Name, c.Party)
		})
		if txID != nil {
			registered = append(registered, registration{candidateID: c.ID, txID: *txID})
		}
	}

	startTx := s.submit(ctx, electionID, "startElection", s.ledger.StartElection)

	var started domain.Election
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		started, err = s.elections.TransitionStatus(ctx, electionID, domain.ElectionStatusPending, domain.ElectionStatusActive)
		if err != nil {
			return err
		}
		for _, r := range registered {
			if err := s.candidates.MarkRegistered(ctx, r.candidateID, r.txID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Election{}, fmt.Errorf("start election: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:       domain.AuditElectionStarted,
		ActorID:      &actorID,
		SubjectID:    &electionID,
		ExternalTxID: startTx,
		Detail: map[string]any{
			"candidates":            len(candidates),
			"candidates_registered": len(registered),
		},
	})
	s.log.InfoContext(ctx, "election started",
		slog.String("election_id", electionID.String()),
		slog.Bool("ledger_synced", startTx != nil),
	)
	return started, nil
}

// End moves an ACTIVE election to ENDED.
func (s *Service) End(ctx context.Context, electionID, actorID uuid.UUID) (domain.Election, error) {
	e, err := s.elections.GetByID(ctx, electionID)
	if err != nil {
		return domain.Election{}, fmt.Errorf("end election: %w", err)
	}
	if !e.Status.CanTransitionTo(domain.ElectionStatusEnded) {
		return domain.Election{}, fmt.Errorf("end election %s: status is %s: %w", electionID, e.Status, domain.ErrState)
	}

	endTx := s.submit(ctx, electionID, "endElection", s.ledger.EndElection)

	ended, err := s.elections.TransitionStatus(ctx, electionID, domain.ElectionStatusActive, domain.ElectionStatusEnded)
	if err != nil {
		return domain.Election{}, fmt.Errorf("end election: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:       domain.AuditElectionEnded,
		ActorID:      &actorID,
		SubjectID:    &electionID,
		ExternalTxID: endTx,
	})
	s.log.InfoContext(ctx, "election ended",
		slog.String("election_id", electionID.String()),
		slog.Bool("ledger_synced", endTx != nil),
	)
	return ended, nil
}
