package domain

import (
	"time"

	"github.com/google/uuid"
)

// Voter is the registered identity behind an authenticated subject.
type Voter struct {
	ID                 uuid.UUID
	FullName           string
	Email              string
	WalletAddress      *string
	VerificationStatus VerificationStatus
	VoterCode          *string
	RejectionReason    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsVerified returns true once an administrator approved the voter.
func (v *Voter) IsVerified() bool {
	return v.VerificationStatus == VerificationStatusVerified
}

// HasWallet returns true if an external ledger identity is linked.
func (v *Voter) HasWallet() bool {
	return v.WalletAddress != nil && *v.WalletAddress != ""
}

// Eligibility records that a voter may vote in an election.
type Eligibility struct {
	ID         uuid.UUID
	VoterID    uuid.UUID
	ElectionID uuid.UUID
	Eligible   bool
	AssignedBy *uuid.UUID
	CreatedAt  time.Time
}

// VerificationUpdate moves a voter from one verification status to another.
// VoterCode is set on approval, Reason on rejection.
type VerificationUpdate struct {
	From      VerificationStatus
	To        VerificationStatus
	VoterCode *string
	Reason    *string
}

// Passcode is a one-time code scoped to a (voter, election) pair.
// Only the SHA-256 hash of the code is stored.
type Passcode struct {
	ID         uuid.UUID
	VoterID    uuid.UUID
	ElectionID uuid.UUID
	CodeHash   string
	ExpiresAt  time.Time
	UsedAt     *time.Time
	CreatedAt  time.Time
}

// IsUsed returns true if the code was already consumed.
func (p *Passcode) IsUsed() bool {
	return p.UsedAt != nil
}

// IsExpired returns true if the code has expired relative to now.
func (p *Passcode) IsExpired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}
