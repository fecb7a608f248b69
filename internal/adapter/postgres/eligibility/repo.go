// Package eligibility implements the voter eligibility registry using PostgreSQL.
package eligibility

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const table = "voter_eligibility"

// Repo provides eligibility persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new eligibility repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an eligibility record. A second record for the same pair
// yields domain.ErrAlreadyExists; an unknown voter or election yields
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, e domain.Eligibility) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert(table).
		Columns("id", "voter_id", "election_id", "eligible", "assigned_by").
		Values(e.ID, e.VoterID, e.ElectionID, e.Eligible, e.AssignedBy)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "eligibility", e.VoterID)
	}
	return nil
}

// IsEligible reports whether an eligible record exists for the pair.
// A missing record means not eligible.
func (r *Repo) IsEligible(ctx context.Context, voterID, electionID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select().Column(
		"EXISTS(SELECT 1 FROM "+table+" WHERE voter_id = ? AND election_id = ? AND eligible)",
		voterID, electionID,
	)

	var ok bool
	if err := postgres.QueryRow(ctx, q, b).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "eligibility", voterID)
	}
	return ok, nil
}
