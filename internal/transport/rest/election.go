package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/internal/service/election"
	"github.com/heartmarshall/evoting-backend/internal/transport/middleware"
)

type electionService interface {
	Create(ctx context.Context, in election.CreateInput, creatorID uuid.UUID) (domain.Election, error)
	Start(ctx context.Context, electionID, actorID uuid.UUID) (domain.Election, error)
	End(ctx context.Context, electionID, actorID uuid.UUID) (domain.Election, error)
	AddCandidate(ctx context.Context, in election.AddCandidateInput, actorID uuid.UUID) (domain.Candidate, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Election, error)
	List(ctx context.Context) ([]domain.Election, error)
	ListActive(ctx context.Context) ([]domain.Election, error)
	ListCandidates(ctx context.Context, electionID uuid.UUID) ([]domain.Candidate, error)
}

// ElectionHandler serves election and candidate endpoints.
type ElectionHandler struct {
	svc electionService
	log *slog.Logger
}

// NewElectionHandler creates an ElectionHandler.
func NewElectionHandler(svc electionService, logger *slog.Logger) *ElectionHandler {
	return &ElectionHandler{svc: svc, log: logger.With("handler", "election")}
}

type createElectionRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
}

type addCandidateRequest struct {
	Name        string `json:"name"`
	Party       string `json:"party"`
	Description string `json:"description"`
}

// Create handles POST /admin/elections.
func (h *ElectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, err := middleware.RequireAdmin(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createElectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	e, err := h.svc.Create(r.Context(), election.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
	}, adminID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toElection(e))
}

// Start handles POST /admin/elections/{id}/start.
func (h *ElectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Start)
}

// End handles POST /admin/elections/{id}/end.
func (h *ElectionHandler) End(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.End)
}

func (h *ElectionHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, electionID, actorID uuid.UUID) (domain.Election, error),
) {
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

	e, err := fn(r.Context(), id, adminID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toElection(e))
}

// AddCandidate handles POST /admin/elections/{id}/candidates.
func (h *ElectionHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
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

	var req addCandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.AddCandidate(r.Context(), election.AddCandidateInput{
		ElectionID:  id,
		Name:        req.Name,
		Party:       req.Party,
		Description: req.Description,
	}, adminID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCandidate(c))
}

// List handles GET /elections.
func (h *ElectionHandler) List(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toElections(es))
}

// ListActive handles GET /elections/active.
func (h *ElectionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.ListActive(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toElections(es))
}

// Get handles GET /elections/{id}.
func (h *ElectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toElection(e))
}

// Candidates handles GET /elections/{id}/candidates.
func (h *ElectionHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	cs, err := h.svc.ListCandidates(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]candidateResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCandidate(c))
	}
	writeJSON(w, http.StatusOK, out)
}
