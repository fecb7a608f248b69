package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/internal/service/voter"
	"github.com/heartmarshall/evoting-backend/internal/transport/middleware"
)

type voterService interface {
	Register(ctx context.Context, in voter.RegisterInput) (domain.Voter, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Voter, error)
	ListPending(ctx context.Context) ([]domain.Voter, error)
	Approve(ctx context.Context, voterID, actorID uuid.UUID) (domain.Voter, error)
	Reject(ctx context.Context, voterID uuid.UUID, reason string, actorID uuid.UUID) (domain.Voter, error)
	Assign(ctx context.Context, voterID, electionID, actorID uuid.UUID) error
}

// VoterHandler serves voter registration and administration endpoints.
type VoterHandler struct {
	svc voterService
	log *slog.Logger
}

// NewVoterHandler creates a VoterHandler.
func NewVoterHandler(svc voterService, logger *slog.Logger) *VoterHandler {
	return &VoterHandler{svc: svc, log: logger.With("handler", "voter")}
}

type registerVoterRequest struct {
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	WalletAddress *string `json:"wallet_address"`
}

type rejectVoterRequest struct {
	Reason string `json:"reason"`
}

// Register handles POST /voters/me. The voter ID is the token subject.
func (h *VoterHandler) Register(w http.ResponseWriter, r *http.Request) {
	subject, err := middleware.RequireSubject(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req registerVoterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Register(r.Context(), voter.RegisterInput{
		VoterID:       subject,
		FullName:      req.FullName,
		Email:         req.Email,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVoter(v))
}

// Me handles GET /voters/me.
func (h *VoterHandler) Me(w http.ResponseWriter, r *http.Request) {
	subject, err := middleware.RequireSubject(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	v, err := h.svc.Get(r.Context(), subject)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoter(v))
}

// Pending handles GET /admin/voters/pending.
func (h *VoterHandler) Pending(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	vs, err := h.svc.ListPending(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]voterResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVoter(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// Approve handles POST /admin/voters/{id}/approve.
func (h *VoterHandler) Approve(w http.ResponseWriter, r *http.Request) {
	adminID, err := middleware.RequireAdmin(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Approve(r.Context(), id, adminID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoter(v))
}

// Reject handles POST /admin/voters/{id}/reject.
func (h *VoterHandler) Reject(w http.ResponseWriter, r *http.Request) {
	adminID, err := middleware.RequireAdmin(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req rejectVoterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Reject(r.Context(), id, req.Reason, adminID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoter(v))
}

// Assign handles POST /admin/elections/{id}/voters/{voterID}.
func (h *VoterHandler) Assign(w http.ResponseWriter, r *http.Request) {
	adminID, err := middleware.RequireAdmin(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	electionID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	voterID, err := pathUUID(r, "voterID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Assign(r.Context(), voterID, electionID, adminID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"voter_id":    voterID,
		"election_id": electionID,
		"eligible":    true,
	})
}
