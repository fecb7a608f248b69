package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrState means the operation is not allowed in the current lifecycle state.
	ErrState = errors.New("invalid state")
	// ErrPrecondition means a required precondition (candidates, verification, wallet) is missing.
	ErrPrecondition = errors.New("precondition failed")
	// ErrInvalidToken means a passcode did not match an unused, unexpired code.
	ErrInvalidToken = errors.New("invalid or expired passcode")
	// ErrUnconfirmedTransaction means the external ledger has no successful receipt for a tx.
	ErrUnconfirmedTransaction = errors.New("transaction not confirmed")

	// ErrLedgerUnavailable means the external ledger could not be reached or timed out.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrLedgerRejected means the external ledger answered but refused the call.
	ErrLedgerRejected = errors.New("ledger rejected")
)

// Domain-specific conflicts. They still match ErrConflict via errors.Is.
var (
	ErrAlreadyVoted     = fmt.Errorf("already voted in this election: %w", ErrConflict)
	ErrNullifierUsed    = fmt.Errorf("nullifier already used: %w", ErrConflict)
	ErrAlreadyAssigned  = fmt.Errorf("voter already assigned to election: %w", ErrConflict)
	ErrNotEligible      = fmt.Errorf("voter is not eligible for this election: %w", ErrForbidden)
	ErrElectionInactive = fmt.Errorf("election is not active: %w", ErrState)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Kind is the category of a failure. The transport layer maps it to a status
// code in exactly one place.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindState
	KindPrecondition
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidToken
	KindUnconfirmedTransaction
	KindLedgerUnavailable
)

var kindNames = map[Kind]string{
	KindInternal:               "INTERNAL",
	KindValidation:             "VALIDATION",
	KindState:                  "STATE",
	KindPrecondition:           "PRECONDITION",
	KindUnauthorized:           "UNAUTHORIZED",
	KindForbidden:              "FORBIDDEN",
	KindNotFound:               "NOT_FOUND",
	KindConflict:               "CONFLICT",
	KindInvalidToken:           "INVALID_TOKEN",
	KindUnconfirmedTransaction: "UNCONFIRMED_TRANSACTION",
	KindLedgerUnavailable:      "LEDGER_UNAVAILABLE",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "INTERNAL"
}

// KindOf classifies err. Order matters: the more specific sentinels are
// checked before the generic ones they may wrap.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrUnconfirmedTransaction):
		return KindUnconfirmedTransaction
	case errors.Is(err, ErrInvalidToken):
		return KindInvalidToken
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrState):
		return KindState
	case errors.Is(err, ErrPrecondition):
		return KindPrecondition
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrLedgerUnavailable), errors.Is(err, ErrLedgerRejected):
		return KindLedgerUnavailable
	default:
		return KindInternal
	}
}
