// Package vote implements the authoritative vote ledger using PostgreSQL.
// A cast is two rows written together: a participation row keyed by
// (voter, election) and the immutable vote row.
package vote

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/evoting-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

const (
	votesTable         = "votes"
	participationTable = "voter_participation"

	constraintParticipation = "voter_participation_pkey"
	constraintVoterElection = "votes_voter_election_key"
	constraintNullifier     = "votes_nullifier_hash_key"
	constraintExternalTx    = "votes_external_tx_id_key"
)

// ErrTxAlreadyRecorded means the external transaction id is already bound to a vote.
var ErrTxAlreadyRecorded = fmt.Errorf("transaction already recorded: %w", domain.ErrConflict)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Record writes the participation row for (voterID, v.ElectionID) and then
// the vote row. voterID is always required; v.VoterID may be nil for an
// anonymised vote. Call it inside a transaction so both rows commit together.
func (r *Repo) Record(ctx context.Context, voterID uuid.UUID, v domain.Vote) (domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	part := postgres.Builder().Insert(participationTable).
		Columns("voter_id", "election_id", "voted_at").
		Values(voterID, v.ElectionID, v.CastAt)
	if _, err := postgres.Exec(ctx, q, part); err != nil {
		return domain.Vote{}, mapVoteError(err, voterID)
	}

	ins := postgres.Builder().Insert(votesTable).
		Columns("id", "voter_id", "election_id", "candidate_id", "external_tx_id", "nullifier_hash", "cast_at").
		Values(v.ID, v.VoterID, v.ElectionID, v.CandidateID, v.ExternalTxID, v.NullifierHash, v.CastAt).
		Suffix("RETURNING id, voter_id, election_id, candidate_id, external_tx_id, nullifier_hash, cast_at")

	var got domain.Vote
	err := postgres.QueryRow(ctx, q, ins).Scan(
		&got.ID, &got.VoterID, &got.ElectionID, &got.CandidateID, &got.ExternalTxID, &got.NullifierHash, &got.CastAt,
	)
	if err != nil {
		return domain.Vote{}, mapVoteError(err, voterID)
	}
	return got, nil
}

func mapVoteError(err error, voterID uuid.UUID) error {
	switch postgres.ConstraintName(err) {
	case constraintParticipation, constraintVoterElection:
		return fmt.Errorf("vote of %s: %w", voterID, domain.ErrAlreadyVoted)
	case constraintNullifier:
		return fmt.Errorf("vote of %s: %w", voterID, domain.ErrNullifierUsed)
	case constraintExternalTx:
		return fmt.Errorf("vote of %s: %w", voterID, ErrTxAlreadyRecorded)
	}
	return postgres.MapError(err, "vote of voter", voterID)
}

// HasParticipated reports whether the voter already voted in the election.
func (r *Repo) HasParticipated(ctx context.Context, voterID, electionID uuid.UUID) (bool, error) {
	return r.exists(ctx,
		"EXISTS(SELECT 1 FROM "+participationTable+" WHERE voter_id = ? AND election_id = ?)",
		voterID, electionID,
	)
}

// NullifierUsed reports whether a vote with the given nullifier exists.
func (r *Repo) NullifierUsed(ctx context.Context, nullifier string) (bool, error) {
	return r.exists(ctx, "EXISTS(SELECT 1 FROM "+votesTable+" WHERE nullifier_hash = ?)", nullifier)
}

func (r *Repo) exists(ctx context.Context, expr string, args ...any) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ok bool
	if err := postgres.QueryRow(ctx, q, postgres.Builder().Select().Column(expr, args...)).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "vote lookup", args[0])
	}
	return ok, nil
}

// CountByCandidate returns the vote count per candidate of an election.
// Candidates without votes are absent from the map.
func (r *Repo) CountByCandidate(ctx context.Context, electionID uuid.UUID) (map[uuid.UUID]int64, error) {
	b := postgres.Builder().Select("candidate_id", "count(*)").From(votesTable).
		Where(squirrel.Eq{"election_id": electionID}).
		GroupBy("candidate_id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("count votes of %s: %w", electionID, err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var (
			id uuid.UUID
			n  int64
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("count votes of %s: %w", electionID, err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count votes of %s: %w", electionID, err)
	}
	return counts, nil
}

// ListParticipations returns the elections the voter took part in, newest first.
func (r *Repo) ListParticipations(ctx context.Context, voterID uuid.UUID) ([]domain.VoteRecord, error) {
	b := postgres.Builder().
		Select("p.election_id", "e.title", "p.voted_at").
		From(participationTable + " p").
		Join("elections e ON e.id = p.election_id").
		Where(squirrel.Eq{"p.voter_id": voterID}).
		OrderBy("p.voted_at DESC")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list participations of %s: %w", voterID, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VoteRecord, error) {
		var rec domain.VoteRecord
		err := row.Scan(&rec.ElectionID, &rec.ElectionTitle, &rec.VotedAt)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("list participations of %s: %w", voterID, err)
	}
	return out, nil
}
