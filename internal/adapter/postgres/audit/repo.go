// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const table = "audit_logs"

var columns = []string{"id", "action", "actor_id", "subject_id", "external_tx_id", "detail", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit entry.
func (r *Repo) Create(ctx context.Context, entry domain.AuditEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	detail := entry.Detail
	if detail == nil {
		detail = map[string]any{}
	}
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("audit_log marshal detail: %w", err)
	}

	b := postgres.Builder().Insert(table).
		Columns("id", "action", "actor_id", "subject_id", "external_tx_id", "detail", "created_at").
		Values(entry.ID, string(entry.Action), entry.ActorID, entry.SubjectID, entry.ExternalTxID, detailJSON, entry.CreatedAt)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "audit_log", entry.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit entries ordered by created_at DESC with pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	b := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).Offset(uint64(offset))
	return r.list(ctx, b)
}

// ListTransactions returns only entries bound to an external ledger
// transaction, ordered by created_at DESC with pagination.
func (r *Repo) ListTransactions(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	b := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.NotEq{"external_tx_id": nil}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).Offset(uint64(offset))
	return r.list(ctx, b)
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.AuditEntry, error) {
	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list audit_logs: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list audit_logs: %w", err)
	}
	return out, nil
}

func scanEntry(row pgx.Row) (domain.AuditEntry, error) {
	var (
		e          domain.AuditEntry
		action     string
		detailJSON []byte
	)
	if err := row.Scan(&e.ID, &action, &e.ActorID, &e.SubjectID, &e.ExternalTxID, &detailJSON, &e.CreatedAt); err != nil {
		return domain.AuditEntry{}, err
	}
	e.Action = domain.AuditAction(action)

	if len(detailJSON) > 0 {
		detail := make(map[string]any)
		if err := json.Unmarshal(detailJSON, &detail); err != nil {
			return domain.AuditEntry{}, fmt.Errorf("audit_log %s unmarshal detail: %w", e.ID, err)
		}
		e.Detail = detail
	}
	return e, nil
}
