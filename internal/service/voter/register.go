package voter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Register creates a PENDING voter profile for the authenticated subject.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.Voter, error) {
	if err := in.Validate(); err != nil {
		return domain.Voter{}, err
	}

	v := domain.Voter{
		ID:                 in.VoterID,
		FullName:           strings.TrimSpace(in.FullName),
		Email:              strings.ToLower(strings.TrimSpace(in.Email)),
		VerificationStatus: domain.VerificationStatusPending,
	}
	if in.WalletAddress != nil {
		checksummed := common.HexToAddress(*in.WalletAddress).Hex()
		v.WalletAddress = &checksummed
	}

	created, err := s.voters.Create(ctx, v)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("register voter: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:    domain.AuditVoterRegistered,
		ActorID:   &created.ID,
		SubjectID: &created.ID,
		Detail:    map[string]any{"has_wallet": created.HasWallet()},
	})
	s.log.InfoContext(ctx, "voter registered", slog.String("voter_id", created.ID.String()))
	return created, nil
}

// Get returns a voter profile.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Voter, error) {
	v, err := s.voters.GetByID(ctx, id)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("get voter: %w", err)
	}
	return v, nil
}

// ListPending returns voters awaiting verification, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]domain.Voter, error) {
	list, err := s.voters.ListByStatus(ctx, domain.VerificationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending voters: %w", err)
	}
	return list, nil
}
