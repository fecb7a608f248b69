package ballot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Cast stores a direct vote. The nullifier is derived from the voter's
// wallet, or from the voter id when no wallet is linked. With relaying on,
// the vote is submitted to the ledger first; on failure a placeholder tx id
// is stored instead.
func (s *Service) Cast(ctx context.Context, in CastInput) (Receipt, error) {
	e, c, err := s.precheck(ctx, in.VoterID, in.ElectionID, in.CandidateID)
	if err != nil {
		return Receipt{}, fmt.Errorf("cast vote: %w", err)
	}

	v, err := s.deps.Voters.GetByID(ctx, in.VoterID)
	if err != nil {
		return Receipt{}, fmt.Errorf("cast vote: %w", err)
	}

	var nullifier string
	if v.HasWallet() {
		nullifier, err = s.deps.Nullifier.Derive(*v.WalletAddress, e.ID)
		if err != nil {
			return Receipt{}, fmt.Errorf("cast vote: %w", err)
		}
	} else {
		nullifier = s.deps.Nullifier.DeriveForVoter(v.ID, e.ID)
	}

	if err := s.checkNullifier(ctx, nullifier); err != nil {
		return Receipt{}, fmt.Errorf("cast vote: %w", err)
	}

	txID := s.relay(ctx, e.ID, c.ChainIndex, nullifier)

	return s.persist(ctx, in.VoterID, e.ID, c.ID, txID, nullifier)
}

func (s *Service) relay(ctx context.Context, electionID uuid.UUID, chainIndex int, nullifier string) string {
	if s.opts.RelayToLedger {
		txID, err := s.deps.Ledger.Vote(ctx, chainIndex, nullifier)
		if err == nil {
			return txID
		}
		s.log.WarnContext(ctx, "ledger write failed",
			slog.String("election_id", electionID.String()),
			slog.String("fn", "vote"),
			slog.String("error", err.Error()),
		)
	}
	return s.opts.PlaceholderPrefix + uuid.NewString()
}

func (s *Service) isPlaceholder(txID string) bool {
	return strings.HasPrefix(txID, s.opts.PlaceholderPrefix)
}

func (s *Service) persist(ctx context.Context, voterID, electionID, candidateID uuid.UUID, txID, nullifier string) (Receipt, error) {
	vote := domain.Vote{
		ID:            uuid.New(),
		ElectionID:    electionID,
		CandidateID:   candidateID,
		ExternalTxID:  txID,
		NullifierHash: nullifier,
		CastAt:        s.now().UTC(),
	}
	if !s.opts.AnonymizeVotes {
		vote.VoterID = &voterID
	}

	var stored domain.Vote
	err := s.deps.Tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		stored, err = s.deps.Votes.Record(ctx, voterID, vote)
		return err
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("record vote: %w", err)
	}

	onLedger := !s.isPlaceholder(stored.ExternalTxID)
	entry := domain.AuditEntry{
		Action:    domain.AuditVoteCast,
		SubjectID: &electionID,
		Detail:    map[string]any{"on_ledger": onLedger},
	}
	if onLedger {
		entry.ExternalTxID = &stored.ExternalTxID
	}
	if !s.opts.AnonymizeVotes {
		entry.ActorID = &voterID
	}
	s.deps.Audit.Record(ctx, entry)

	s.log.InfoContext(ctx, "vote recorded",
		slog.String("election_id", electionID.String()),
		slog.Bool("on_ledger", onLedger),
	)
	return Receipt{
		VoteID:       stored.ID,
		ElectionID:   stored.ElectionID,
		ExternalTxID: stored.ExternalTxID,
		Nullifier:    stored.NullifierHash,
		OnLedger:     onLedger,
		CastAt:       stored.CastAt,
	}, nil
}
