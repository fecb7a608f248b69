// Package candidate implements the Candidate repository using PostgreSQL.
package candidate

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

const table = "candidates"

var columns = []string{
	"id", "election_id", "name", "party", "description",
	"chain_index", "chain_registered", "chain_tx_id", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides candidate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new candidate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a candidate and assigns the next sequential chain index
// (max + 1 within the election). The index is never rewritten afterwards.
// Two concurrent inserts racing for the same index fail one of them on the
// (election_id, chain_index) constraint with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	nextIndex := squirrel.Expr(
		"(SELECT COALESCE(MAX(chain_index), 0) + 1 FROM candidates WHERE election_id = ?)", c.ElectionID,
	)

	b := postgres.Builder().Insert(table).
		Columns("id", "election_id", "name", "party", "description", "chain_index", "chain_registered", "chain_tx_id").
		Values(c.ID, c.ElectionID, c.Name, c.Party, c.Description, nextIndex, c.ChainRegistered, c.ChainTxID).
		Suffix(returning)

	got, err := scanCandidate(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Candidate{}, postgres.MapError(err, "candidate", c.ID)
	}
	return got, nil
}

// GetByID returns a candidate by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	got, err := scanCandidate(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Candidate{}, postgres.MapError(err, "candidate", id)
	}
	return got, nil
}

// ListByElection returns the roster of an election ordered by chain index.
func (r *Repo) ListByElection(ctx context.Context, electionID uuid.UUID) ([]domain.Candidate, error) {
	b := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"election_id": electionID}).
		OrderBy("chain_index")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list candidates of %s: %w", electionID, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Candidate, error) {
		return scanCandidate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list candidates of %s: %w", electionID, err)
	}
	return out, nil
}

// MarkRegistered records that the candidate was added on the external ledger.
func (r *Repo) MarkRegistered(ctx context.Context, id uuid.UUID, txID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update(table).
		Set("chain_registered", true).
		Set("chain_tx_id", txID).
		Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return postgres.MapError(err, "candidate", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCandidate(row pgx.Row) (domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.ElectionID, &c.Name, &c.Party, &c.Description,
		&c.ChainIndex, &c.ChainRegistered, &c.ChainTxID, &c.CreatedAt,
	)
	return c, err
}
