package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Contract is a typed binding of the election contract over a Gateway.
type Contract struct {
	gw Gateway
}

// NewContract wraps gw.
func NewContract(gw Gateway) *Contract {
	return &Contract{gw: gw}
}

// AddCandidate registers a candidate; the contract assigns the next index.
func (c *Contract) AddCandidate(ctx context.Context, name, party string) (string, error) {
	return c.gw.Submit(ctx, FnAddCandidate, name, party)
}

// StartElection opens voting on the contract.
func (c *Contract) StartElection(ctx context.Context) (string, error) {
	return c.gw.Submit(ctx, FnStartElection)
}

// EndElection closes voting on the contract.
func (c *Contract) EndElection(ctx context.Context) (string, error) {
	return c.gw.Submit(ctx, FnEndElection)
}

// RegisterVoter whitelists a wallet on the contract.
func (c *Contract) RegisterVoter(ctx context.Context, wallet string) (string, error) {
	if !common.IsHexAddress(wallet) {
		return "", domain.NewValidationError("wallet_address", "invalid address")
	}
	return c.gw.Submit(ctx, FnRegisterVoter, common.HexToAddress(wallet))
}

// Vote casts for the candidate at chainIndex with a 0x-hex 32-byte nullifier.
func (c *Contract) Vote(ctx context.Context, chainIndex int, nullifier string) (string, error) {
	n, err := Bytes32(nullifier)
	if err != nil {
		return "", err
	}
	return c.gw.Submit(ctx, FnVote, big.NewInt(int64(chainIndex)), n)
}

// GetVotes reads the on-chain count of the candidate at chainIndex.
func (c *Contract) GetVotes(ctx context.Context, chainIndex int) (int64, error) {
	out, err := c.gw.Call(ctx, FnGetVotes, big.NewInt(int64(chainIndex)))
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("ledger %s: %w: %d outputs", FnGetVotes, domain.ErrLedgerRejected, len(out))
	}
	n, ok := out[0].(*big.Int)
	if !ok || !n.IsInt64() {
		return 0, fmt.Errorf("ledger %s: %w: unexpected output %v", FnGetVotes, domain.ErrLedgerRejected, out[0])
	}
	return n.Int64(), nil
}

// Confirmed reports whether txID has a successful receipt.
func (c *Contract) Confirmed(ctx context.Context, txID string) (bool, error) {
	return c.gw.Confirmed(ctx, txID)
}

// Bytes32 decodes a 0x-prefixed 32-byte hex string.
func Bytes32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != 32 {
		return out, domain.NewValidationError("nullifier", "must be 0x followed by 64 hex characters")
	}
	copy(out[:], b)
	return out, nil
}
