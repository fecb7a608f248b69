package ledger

import (
	"context"
	"fmt"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Offline is the gateway used when no RPC endpoint is configured.
// Every operation fails with domain.ErrLedgerUnavailable.
type Offline struct{}

func (Offline) Submit(_ context.Context, fn string, _ ...any) (string, error) {
	return "", fmt.Errorf("ledger %s: %w: offline", fn, domain.ErrLedgerUnavailable)
}

func (Offline) Call(_ context.Context, fn string, _ ...any) ([]any, error) {
	return nil, fmt.Errorf("ledger %s: %w: offline", fn, domain.ErrLedgerUnavailable)
}

func (Offline) Confirmed(_ context.Context, _ string) (bool, error) {
	return false, fmt.Errorf("ledger receipt: %w: offline", domain.ErrLedgerUnavailable)
}

func (Offline) Ping(_ context.Context) error {
	return fmt.Errorf("ledger ping: %w: offline", domain.ErrLedgerUnavailable)
}
