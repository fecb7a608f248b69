package domain

import (
	"time"

	"github.com/google/uuid"
)

// Election is a single contest with a time window and a lifecycle status.
type Election struct {
	ID              uuid.UUID
	Title           string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	Status          ElectionStatus
	ContractAddress *string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether votes may be cast.
func (e *Election) IsActive() bool {
	return e.Status == ElectionStatusActive
}

// Candidate belongs to exactly one election. ChainIndex is the 1-based
// position used by the external contract; it is fixed at insert.
type Candidate struct {
	ID              uuid.UUID
	ElectionID      uuid.UUID
	Name            string
	Party           string
	Description     string
	ChainIndex      int
	ChainRegistered bool
	ChainTxID       *string
	CreatedAt       time.Time
}
