package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is an immutable ballot. VoterID is nil when votes are anonymised;
// per-voter uniqueness is then carried by the participation record alone.
type Vote struct {
	ID            uuid.UUID
	VoterID       *uuid.UUID
	ElectionID    uuid.UUID
	CandidateID   uuid.UUID
	ExternalTxID  string
	NullifierHash string
	CastAt        time.Time
}

// VoteRecord is a voter's view of one of their participations.
type VoteRecord struct {
	ElectionID    uuid.UUID
	ElectionTitle string
	VotedAt       time.Time
}

// CandidateResult is one row of a tally.
type CandidateResult struct {
	CandidateID uuid.UUID
	Name        string
	Party       string
	ChainIndex  int
	Votes       int64
	Percentage  float64
}

// TallyResult is the outcome of counting an election.
type TallyResult struct {
	ElectionID uuid.UUID
	Title      string
	Status     ElectionStatus
	TotalVotes int64
	Candidates []CandidateResult
}
