package ballot

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// CastInput is a direct vote submitted through the service.
type CastInput struct {
	VoterID     uuid.UUID
	ElectionID  uuid.UUID
	CandidateID uuid.UUID
}

// ReceiptInput is a vote the client already submitted to the ledger itself.
type ReceiptInput struct {
	VoterID     uuid.UUID
	ElectionID  uuid.UUID
	CandidateID uuid.UUID
	TxID        string
	Nullifier   string
}

func (i ReceiptInput) Validate() error {
	var errs []domain.FieldError

	if !isHash32(i.TxID) {
		errs = append(errs, domain.FieldError{Field: "tx_id", Message: "must be 0x followed by 64 hex characters"})
	}
	if !isHash32(i.Nullifier) {
		errs = append(errs, domain.FieldError{Field: "nullifier", Message: "must be 0x followed by 64 hex characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isHash32(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) != 66 {
		return false
	}
	_, err := hexutil.Decode(s)
	return err == nil
}
