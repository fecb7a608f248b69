package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/internal/service/audit"
	"github.com/heartmarshall/evoting-backend/internal/transport/middleware"
)

type auditService interface {
	List(ctx context.Context, page audit.Page) ([]domain.AuditEntry, error)
	ListTransactions(ctx context.Context, page audit.Page) ([]domain.AuditEntry, error)
}

// AuditHandler serves the admin audit log.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// List handles GET /admin/audit?limit=50&offset=0.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.List)
}

// Transactions handles GET /admin/audit/transactions, the entries that
// carry an external ledger transaction id.
func (h *AuditHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListTransactions)
}

func (h *AuditHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, page audit.Page) ([]domain.AuditEntry, error),
) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entries, err := fn(r.Context(), audit.Page{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAudit(entries))
}
