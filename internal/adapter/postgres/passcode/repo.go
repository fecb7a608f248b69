// Package passcode implements one-time passcode storage using PostgreSQL.
// Only SHA-256 hashes of codes are stored.
package passcode

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const table = "passcodes"

// Repo provides passcode persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new passcode repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a fresh passcode row. Earlier rows for the pair are kept.
func (r *Repo) Create(ctx context.Context, p domain.Passcode) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert(table).
		Columns("id", "voter_id", "election_id", "code_hash", "expires_at").
		Values(p.ID, p.VoterID, p.ElectionID, p.CodeHash, p.ExpiresAt)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "passcode", p.ID)
	}
	return nil
}

// Consume marks one unused, unexpired passcode matching the hash as used and
// returns it. The update is conditional on used_at IS NULL, so of two
// concurrent consumers only one gets the row; the other gets domain.ErrNotFound.
func (r *Repo) Consume(ctx context.Context, voterID, electionID uuid.UUID, codeHash string, now time.Time) (domain.Passcode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update(table).
		Set("used_at", now).
		Where(`id = (
			SELECT id FROM passcodes
			WHERE voter_id = ? AND election_id = ? AND code_hash = ?
			  AND used_at IS NULL AND expires_at > ?
			ORDER BY created_at DESC
			LIMIT 1
			FOR UPDATE
		)`, voterID, electionID, codeHash, now).
		Where(squirrel.Eq{"used_at": nil}).
		Suffix("RETURNING id, voter_id, election_id, code_hash, expires_at, used_at, created_at")

	var p domain.Passcode
	err := postgres.QueryRow(ctx, q, b).Scan(
		&p.ID, &p.VoterID, &p.ElectionID, &p.CodeHash, &p.ExpiresAt, &p.UsedAt, &p.CreatedAt,
	)
	if err != nil {
		return domain.Passcode{}, postgres.MapError(err, "passcode for voter", voterID)
	}
	return p, nil
}

// DeleteExpired removes every passcode whose expiry is at or before now and
// returns the number of deleted rows.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Delete(table).Where(squirrel.LtOrEq{"expires_at": now})

	tag, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return 0, postgres.MapError(err, "passcode", "sweep")
	}
	return int(tag.RowsAffected()), nil
}
