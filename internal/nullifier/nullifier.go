// Package nullifier derives the per-election anti-replay token for a voter.
package nullifier

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// Deriver computes keccak256(identity ‖ salt32 ‖ electionID).
type Deriver struct {
	salt [32]byte
}

// New returns a Deriver keyed by salt. The salt is right-padded with zeros
// to 32 bytes, matching a Solidity bytes32 literal.
func New(salt string) (*Deriver, error) {
	if salt == "" {
		return nil, fmt.Errorf("nullifier: empty salt")
	}
	if len(salt) > 32 {
		return nil, fmt.Errorf("nullifier: salt longer than 32 bytes")
	}
	d := &Deriver{}
	copy(d.salt[:], salt)
	return d, nil
}

// Derive returns the nullifier for a wallet address in an election.
func (d *Deriver) Derive(wallet string, electionID uuid.UUID) (string, error) {
	if !common.IsHexAddress(wallet) {
		return "", domain.NewValidationError("wallet_address", "invalid address")
	}
	addr := common.HexToAddress(wallet)
	return d.hash(addr.Bytes(), electionID), nil
}

// DeriveForVoter is Derive over the voter id, for voters with no wallet.
func (d *Deriver) DeriveForVoter(voterID, electionID uuid.UUID) string {
	return d.hash(voterID[:], electionID)
}

func (d *Deriver) hash(identity []byte, electionID uuid.UUID) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(identity)
	h.Write(d.salt[:])
	h.Write(electionID[:])
	return hexutil.Encode(h.Sum(nil))
}
