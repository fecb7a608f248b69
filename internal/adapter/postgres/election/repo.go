// Package election implements the Election repository using PostgreSQL.
package election

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const table = "elections"

var columns = []string{
	"id", "title", "description", "start_at", "end_at", "status",
	"contract_address", "created_by", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides election persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new election repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new election and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e domain.Election) (domain.Election, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert(table).
		Columns("id", "title", "description", "start_at", "end_at", "status", "contract_address", "created_by").
		Values(e.ID, e.Title, e.Description, e.StartAt, e.EndAt, string(e.Status), e.ContractAddress, e.CreatedBy).
		Suffix(returning)

	got, err := scanElection(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Election{}, postgres.MapError(err, "election", e.ID)
	}
	return got, nil
}

// GetByID returns an election by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Election, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns an election and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Election, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (domain.Election, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	got, err := scanElection(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Election{}, postgres.MapError(err, "election", id)
	}
	return got, nil
}

// List returns all elections, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Election, error) {
	b := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC", "id")
	return r.list(ctx, b)
}

// ListByStatus returns elections in the given status, newest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.ElectionStatus) ([]domain.Election, error) {
	b := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"status": string(status)}).
		OrderBy("created_at DESC", "id")
	return r.list(ctx, b)
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Election, error) {
	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list elections: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Election, error) {
		return scanElection(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list elections: %w", err)
	}
	return out, nil
}

// TransitionStatus moves the election from -> to only if it is currently in
// from. A lost race or a wrong current status yields domain.ErrState.
func (r *Repo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.ElectionStatus) (domain.Election, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update(table).
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		Suffix(returning)

	got, err := scanElection(postgres.QueryRow(ctx, q, b))
	if err != nil {
		mapped := postgres.MapError(err, "election", id)
		if postgres.IsNotFound(mapped) {
			return domain.Election{}, fmt.Errorf("election %s: not %s: %w", id, from, domain.ErrState)
		}
		return domain.Election{}, mapped
	}
	return got, nil
}

func scanElection(row pgx.Row) (domain.Election, error) {
	var (
		e      domain.Election
		status string
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartAt, &e.EndAt, &status,
		&e.ContractAddress, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Election{}, err
	}
	e.Status = domain.ElectionStatus(status)
	return e, nil
}
