package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/internal/service/ballot"
)

type electionResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	Status          string    `json:"status"`
	ContractAddress *string   `json:"contract_address,omitempty"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toElection(e domain.Election) electionResponse {
	return electionResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		StartAt:         e.StartAt,
		EndAt:           e.EndAt,
		Status:          string(e.Status),
		ContractAddress: e.ContractAddress,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toElections(es []domain.Election) []electionResponse {
	out := make([]electionResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toElection(e))
	}
	return out
}

type candidateResponse struct {
	ID              uuid.UUID `json:"id"`
	ElectionID      uuid.UUID `json:"election_id"`
	Name            string    `json:"name"`
	Party           string    `json:"party"`
	Description     string    `json:"description"`
	ChainIndex      int       `json:"chain_index"`
	ChainRegistered bool      `json:"chain_registered"`
	ChainTxID       *string   `json:"chain_tx_id,omitempty"`
}

func toCandidate(c domain.Candidate) candidateResponse {
	return candidateResponse{
		ID:              c.ID,
		ElectionID:      c.ElectionID,
		Name:            c.Name,
		Party:           c.Party,
		Description:     c.Description,
		ChainIndex:      c.ChainIndex,
		ChainRegistered: c.ChainRegistered,
		ChainTxID:       c.ChainTxID,
	}
}

type voterResponse struct {
	ID                 uuid.UUID `json:"id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	WalletAddress      *string   `json:"wallet_address,omitempty"`
	VerificationStatus string    `json:"verification_status"`
	VoterCode          *string   `json:"voter_code,omitempty"`
	RejectionReason    *string   `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toVoter(v domain.Voter) voterResponse {
	return voterResponse{
		ID:                 v.ID,
		FullName:           v.FullName,
		Email:              v.Email,
		WalletAddress:      v.WalletAddress,
		VerificationStatus: string(v.VerificationStatus),
		VoterCode:          v.VoterCode,
		RejectionReason:    v.RejectionReason,
		CreatedAt:          v.CreatedAt,
	}
}

type receiptResponse struct {
	VoteID       uuid.UUID `json:"vote_id"`
	ElectionID   uuid.UUID `json:"election_id"`
	ExternalTxID string    `json:"external_tx_id"`
	Nullifier    string    `json:"nullifier"`
	OnLedger     bool      `json:"on_ledger"`
	CastAt       time.Time `json:"cast_at"`
}

func toReceipt(r ballot.Receipt) receiptResponse {
	return receiptResponse(r)
}

type voteRecordResponse struct {
	ElectionID    uuid.UUID `json:"election_id"`
	ElectionTitle string    `json:"election_title"`
	VotedAt       time.Time `json:"voted_at"`
}

type tallyResponse struct {
	ElectionID uuid.UUID                `json:"election_id"`
	Title      string                   `json:"title"`
	Status     string                   `json:"status"`
	TotalVotes int64                    `json:"total_votes"`
	Candidates []candidateTallyResponse `json:"candidates"`
}

type candidateTallyResponse struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Party       string    `json:"party"`
	Votes       int64     `json:"votes"`
	Percentage  float64   `json:"percentage"`
}

func toTally(t domain.TallyResult) tallyResponse {
	out := tallyResponse{
		ElectionID: t.ElectionID,
		Title:      t.Title,
		Status:     string(t.Status),
		TotalVotes: t.TotalVotes,
		Candidates: make([]candidateTallyResponse, 0, len(t.Candidates)),
	}
	for _, c := range t.Candidates {
		out.Candidates = append(out.Candidates, candidateTallyResponse{
			CandidateID: c.CandidateID,
			Name:        c.Name,
			Party:       c.Party,
			Votes:       c.Votes,
			Percentage:  c.Percentage,
		})
	}
	return out
}

type auditResponse struct {
	ID           uuid.UUID      `json:"id"`
	Action       string         `json:"action"`
	ActorID      *uuid.UUID     `json:"actor_id,omitempty"`
	SubjectID    *uuid.UUID     `json:"subject_id,omitempty"`
	ExternalTxID *string        `json:"external_tx_id,omitempty"`
	Detail       map[string]any `json:"detail,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toAudit(es []domain.AuditEntry) []auditResponse {
	out := make([]auditResponse, 0, len(es))
	for _, e := range es {
		out = append(out, auditResponse{
			ID:           e.ID,
			Action:       string(e.Action),
			ActorID:      e.ActorID,
			SubjectID:    e.SubjectID,
			ExternalTxID: e.ExternalTxID,
			Detail:       e.Detail,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
