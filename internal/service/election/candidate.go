package election

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// AddCandidate appends a candidate to a PENDING or ACTIVE election. On an
// ACTIVE election the candidate is registered on the ledger immediately;
// otherwise registration waits for Start.
func (s *Service) AddCandidate(ctx context.Context, in AddCandidateInput, actorID uuid.UUID) (domain.Candidate, error) {
	if err := in.Validate(); err != nil {
		return domain.Candidate{}, err
	}

	e, err := s.elections.GetByID(ctx, in.ElectionID)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("add candidate: %w", err)
	}
	if e.Status == domain.ElectionStatusEnded {
		return domain.Candidate{}, fmt.Errorf("add candidate to %s: election ended: %w", e.ID, domain.ErrState)
	}

	c := domain.Candidate{
		ID:          uuid.New(),
		ElectionID:  e.ID,
		Name:        strings.TrimSpace(in.Name),
		Party:       strings.TrimSpace(in.Party),
		Description: in.Description,
	}
	if e.IsActive() {
		c.ChainTxID = s.submit(ctx, e.ID, "addCandidate", func(ctx context.Context) (string, error) {
			return s.ledger.AddCandidate(ctx, c.Name, c.Party)
		})
		c.ChainRegistered = c.ChainTxID != nil
	}

	var created domain.Candidate
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Lock the election so the status check and the index assignment
		// cannot interleave with Start, End or another AddCandidate. The
		// ledger step above was chosen for e.Status; any change means the
		// candidate would be stored with the wrong registration state.
		locked, err := s.elections.GetByIDForUpdate(ctx, e.ID)
		if err != nil {
			return err
		}
		if locked.Status != e.Status {
			return fmt.Errorf("election status changed from %s to %s, retry: %w", e.Status, locked.Status, domain.ErrState)
		}
		created, err = s.candidates.Create(ctx, c)
		return err
	})
	if err != nil {
		if c.ChainRegistered {
			s.log.WarnContext(ctx, "candidate registered on ledger but not stored",
				slog.String("election_id", e.ID.String()),
				slog.String("tx_id", *c.ChainTxID),
			)
		}
		return domain.Candidate{}, fmt.Errorf("add candidate: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:       domain.AuditCandidateAdded,
		ActorID:      &actorID,
		SubjectID:    &created.ID,
		ExternalTxID: created.ChainTxID,
		Detail: map[string]any{
			"election_id": e.ID.String(),
			"name":        created.Name,
			"chain_index": created.ChainIndex,
		},
	})
	s.log.InfoContext(ctx, "candidate added",
		slog.String("election_id", e.ID.String()),
		slog.Int("chain_index", created.ChainIndex),
		slog.Bool("chain_registered", created.ChainRegistered),
	)
	return created, nil
}
