package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/internal/service/ballot"
	"github.com/heartmarshall/evoting-backend/internal/transport/middleware"
)

type ballotService interface {
	Cast(ctx context.Context, in ballot.CastInput) (ballot.Receipt, error)
	RecordReceipt(ctx context.Context, in ballot.ReceiptInput) (ballot.Receipt, error)
	HasVoted(ctx context.Context, voterID, electionID uuid.UUID) (bool, error)
	History(ctx context.Context, voterID uuid.UUID) ([]domain.VoteRecord, error)
}

// VoteHandler serves vote casting and participation endpoints.
type VoteHandler struct {
	svc ballotService
	log *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(svc ballotService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{svc: svc, log: logger.With("handler", "vote")}
}

type castRequest struct {
	CandidateID uuid.UUID `json:"candidate_id"`
}

type receiptRequest struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	TxID        string    `json:"tx_id"`
	Nullifier   string    `json:"nullifier"`
}

// Cast handles POST /elections/{id}/votes.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	voterID, err := middleware.RequireSubject(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	electionID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req castRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	receipt, err := h.svc.Cast(r.Context(), ballot.CastInput{
		VoterID:     voterID,
		ElectionID:  electionID,
		CandidateID: req.CandidateID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReceipt(receipt))
}

// Receipt handles POST /elections/{id}/receipts for votes the client
// already submitted to the ledger.
func (h *VoteHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	voterID, err := middleware.RequireSubject(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	electionID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req receiptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	receipt, err := h.svc.RecordReceipt(r.Context(), ballot.ReceiptInput{
		VoterID:     voterID,
		ElectionID:  electionID,
		CandidateID: req.CandidateID,
		TxID:        req.TxID,
		Nullifier:   req.Nullifier,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReceipt(receipt))
}

// Status handles GET /elections/{id}/votes/me.
func (h *VoteHandler) Status(w http.ResponseWriter, r *http.Request) {
	voterID, err := middleware.RequireSubject(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	electionID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	voted, err := h.svc.HasVoted(r.Context(), voterID, electionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"election_id": electionID,
		"has_voted":   voted,
	})
}

// History handles GET /votes/me.
func (h *VoteHandler) History(w http.ResponseWriter, r *http.Request) {
	voterID, err := middleware.RequireSubject(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), voterID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]voteRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, voteRecordResponse{
			ElectionID:    rec.ElectionID,
			ElectionTitle: rec.ElectionTitle,
			VotedAt:       rec.VotedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
