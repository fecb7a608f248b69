package passcode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

func validCode(code string) bool {
	if len(code) != codeDigits {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Verify consumes a matching unused, unexpired code and returns the voter's
// nullifier for the election. A code that cannot match, malformed ones
// included, is ErrInvalidToken. If the voter has no linked wallet the
// consumption is rolled back and the code stays usable.
func (s *Service) Verify(ctx context.Context, voterID, electionID uuid.UUID, code string) (string, error) {
	if !validCode(code) {
		return "", fmt.Errorf("verify passcode: %w", domain.ErrInvalidToken)
	}

	var nullifier string
	err := s.deps.Tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.deps.Passcodes.Consume(ctx, voterID, electionID, hashCode(code), s.now().UTC())
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidToken
		}
		if err != nil {
			return err
		}

		v, err := s.deps.Voters.GetByID(ctx, voterID)
		if err != nil {
			return err
		}
		if !v.HasWallet() {
			return fmt.Errorf("voter %s has no linked wallet: %w", voterID, domain.ErrPrecondition)
		}

		nullifier, err = s.deps.Nullifier.Derive(*v.WalletAddress, electionID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("verify passcode: %w", err)
	}

	s.log.InfoContext(ctx, "passcode verified",
		slog.String("voter_id", voterID.String()),
		slog.String("election_id", electionID.String()),
	)
	return nullifier, nil
}
