package voter

import (
	"net/mail"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// RegisterInput holds the profile of the authenticated subject.
type RegisterInput struct {
	VoterID       uuid.UUID
	FullName      string
	Email         string
	WalletAddress *string
}

func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.VoterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "voter_id", Message: "required"})
	}
	if name := strings.TrimSpace(i.FullName); name == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if i.WalletAddress != nil && !common.IsHexAddress(*i.WalletAddress) {
		errs = append(errs, domain.FieldError{Field: "wallet_address", Message: "invalid address"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
