package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type tallyService interface {
	Tally(ctx context.Context, electionID uuid.UUID) (domain.TallyResult, error)
}

// ResultHandler serves election results.
type ResultHandler struct {
	svc tallyService
	log *slog.Logger
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(svc tallyService, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{svc: svc, log: logger.With("handler", "result")}
}

// Get handles GET /results/{id}. Results are public at every stage.
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	res, err := h.svc.Tally(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTally(res))
}
