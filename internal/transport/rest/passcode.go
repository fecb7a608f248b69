package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/transport/middleware"
)

type passcodeService interface {
	Request(ctx context.Context, voterID, electionID uuid.UUID) (time.Time, error)
	Verify(ctx context.Context, voterID, electionID uuid.UUID, code string) (string, error)
}

// PasscodeHandler serves the one-time passcode endpoints.
type PasscodeHandler struct {
	svc passcodeService
	log *slog.Logger
}

// NewPasscodeHandler creates a PasscodeHandler.
func NewPasscodeHandler(svc passcodeService, logger *slog.Logger) *PasscodeHandler {
	return &PasscodeHandler{svc: svc, log: logger.With("handler", "passcode")}
}

type verifyPasscodeRequest struct {
	Code string `json:"code"`
}

// Request handles POST /elections/{id}/passcode. The code is delivered
// out of band; only its expiry is returned.
func (h *PasscodeHandler) Request(w http.ResponseWriter, r *http.Request) {
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

	expiresAt, err := h.svc.Request(r.Context(), voterID, electionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"expires_at": expiresAt})
}

// Verify handles POST /elections/{id}/passcode/verify and returns the
// nullifier the client needs to vote on the ledger directly.
func (h *PasscodeHandler) Verify(w http.ResponseWriter, r *http.Request) {
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

	var req verifyPasscodeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	nullifier, err := h.svc.Verify(r.Context(), voterID, electionID, req.Code)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"nullifier": nullifier})
}
