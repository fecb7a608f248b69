// Package voter implements the Voter repository using PostgreSQL.
package voter

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

const table = "voters"

var columns = []string{
	"id", "full_name", "email", "wallet_address", "verification_status",
	"voter_code", "rejection_reason", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides voter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new voter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a voter profile. A duplicate email or wallet yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v domain.Voter) (domain.Voter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert(table).
		Columns("id", "full_name", "email", "wallet_address", "verification_status").
		Values(v.ID, v.FullName, v.Email, v.WalletAddress, string(v.VerificationStatus)).
		Suffix(returning)

	got, err := scanVoter(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Voter{}, postgres.MapError(err, "voter", v.ID)
	}
	return got, nil
}

// GetByID returns a voter by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Voter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	got, err := scanVoter(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Voter{}, postgres.MapError(err, "voter", id)
	}
	return got, nil
}

// ListByStatus returns voters in the given verification status, oldest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.Voter, error) {
	b := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"verification_status": string(status)}).
		OrderBy("created_at", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Voter, error) {
		return scanVoter(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}
	return out, nil
}

// UpdateVerification applies u only if the voter is currently in u.From.
// Otherwise it returns domain.ErrState.
func (r *Repo) UpdateVerification(ctx context.Context, id uuid.UUID, u domain.VerificationUpdate) (domain.Voter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update(table).
		Set("verification_status", string(u.To)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "verification_status": string(u.From)}).
		Suffix(returning)
	if u.VoterCode != nil {
		b = b.Set("voter_code", *u.VoterCode)
	}
	if u.Reason != nil {
		b = b.Set("rejection_reason", *u.Reason)
	}

	got, err := scanVoter(postgres.QueryRow(ctx, q, b))
	if err != nil {
		mapped := postgres.MapError(err, "voter", id)
		if postgres.IsNotFound(mapped) {
			return domain.Voter{}, fmt.Errorf("voter %s: not %s: %w", id, u.From, domain.ErrState)
		}
		return domain.Voter{}, mapped
	}
	return got, nil
}

func scanVoter(row pgx.Row) (domain.Voter, error) {
	var (
		v      domain.Voter
		status string
	)
	err := row.Scan(
		&v.ID, &v.FullName, &v.Email, &v.WalletAddress, &status,
		&v.VoterCode, &v.RejectionReason, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return domain.Voter{}, err
	}
	v.VerificationStatus = domain.VerificationStatus(status)
	return v, nil
}
