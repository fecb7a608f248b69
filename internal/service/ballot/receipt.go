package ballot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// RecordReceipt stores a vote the client already cast on the ledger. The
// nullifier must be the one derived from the voter's wallet and the
// transaction must have a successful receipt.
func (s *Service) RecordReceipt(ctx context.Context, in ReceiptInput) (Receipt, error) {
	if err := in.Validate(); err != nil {
		return Receipt{}, err
	}

	e, c, err := s.precheck(ctx, in.VoterID, in.ElectionID, in.CandidateID)
	if err != nil {
		return Receipt{}, fmt.Errorf("record receipt: %w", err)
	}
	nullifier, err := s.ownNullifier(ctx, in.VoterID, e.ID, in.Nullifier)
	if err != nil {
		return Receipt{}, fmt.Errorf("record receipt: %w", err)
	}
	if err := s.checkNullifier(ctx, nullifier); err != nil {
		return Receipt{}, fmt.Errorf("record receipt: %w", err)
	}

	ok, err := s.deps.Ledger.Confirmed(ctx, in.TxID)
	if err != nil {
		s.log.WarnContext(ctx, "ledger receipt lookup failed",
			slog.String("election_id", e.ID.String()),
			slog.String("tx_id", in.TxID),
			slog.String("error", err.Error()),
		)
		return Receipt{}, fmt.Errorf("record receipt %s: %w: %w", in.TxID, domain.ErrUnconfirmedTransaction, err)
	}
	if !ok {
		return Receipt{}, fmt.Errorf("record receipt %s: %w", in.TxID, domain.ErrUnconfirmedTransaction)
	}

	return s.persist(ctx, in.VoterID, e.ID, c.ID, in.TxID, nullifier)
}

// ownNullifier checks that supplied is the nullifier derived from the
// voter's wallet for the election and returns the derived form.
func (s *Service) ownNullifier(ctx context.Context, voterID, electionID uuid.UUID, supplied string) (string, error) {
	v, err := s.deps.Voters.GetByID(ctx, voterID)
	if err != nil {
		return "", err
	}
	if !v.HasWallet() {
		return "", fmt.Errorf("voter %s has no linked wallet: %w", voterID, domain.ErrPrecondition)
	}
	derived, err := s.deps.Nullifier.Derive(*v.WalletAddress, electionID)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(derived, supplied) {
		return "", fmt.Errorf("nullifier does not belong to voter %s: %w", voterID, domain.ErrForbidden)
	}
	return derived, nil
}

// HasVoted reports whether the voter participated in the election.
func (s *Service) HasVoted(ctx context.Context, voterID, electionID uuid.UUID) (bool, error) {
	voted, err := s.deps.Votes.HasParticipated(ctx, voterID, electionID)
	if err != nil {
		return false, fmt.Errorf("has voted: %w", err)
	}
	return voted, nil
}

// History lists the elections the voter took part in, newest first.
func (s *Service) History(ctx context.Context, voterID uuid.UUID) ([]domain.VoteRecord, error) {
	list, err := s.deps.Votes.ListParticipations(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("vote history: %w", err)
	}
	return list, nil
}
