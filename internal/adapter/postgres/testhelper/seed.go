package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// VoterOption customises a seeded voter.
type VoterOption func(v *domain.Voter)

// WithWallet links a random wallet address.
func WithWallet() VoterOption {
	return func(v *domain.Voter) {
		u := uuid.New()
		addr := fmt.Sprintf("0x%x%x", u[:], u[:4])
		v.WalletAddress = &addr
	}
}

// WithStatus sets the verification status.
func WithStatus(s domain.VerificationStatus) VoterOption {
	return func(v *domain.Voter) { v.VerificationStatus = s }
}

// SeedVoter creates a VERIFIED voter without a wallet unless options say otherwise.
func SeedVoter(t *testing.T, pool *pgxpool.Pool, opts ...VoterOption) domain.Voter {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	v := domain.Voter{
		ID:                 uuid.New(),
		FullName:           "Test Voter " + suffix,
		Email:              "voter-" + suffix + "@example.com",
		VerificationStatus: domain.VerificationStatusVerified,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
	for _, opt := range opts {
		opt(&v)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO voters (id, full_name, email, wallet_address, verification_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.FullName, v.Email, v.WalletAddress, string(v.VerificationStatus), v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVoter: %v", err)
	}

	return v
}

// SeedElection creates an election in the given status spanning the next day.
func SeedElection(t *testing.T, pool *pgxpool.Pool, status domain.ElectionStatus) domain.Election {
	t.Helper()

	ts := now()
	e := domain.Election{
		ID:          uuid.New(),
		Title:       "Election " + uniqueSuffix(),
		Description: "seeded",
		StartAt:     ts,
		EndAt:       ts.Add(24 * time.Hour),
		Status:      status,
		CreatedBy:   uuid.New(),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO elections (id, title, description, start_at, end_at, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Title, e.Description, e.StartAt, e.EndAt, string(e.Status), e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedElection: %v", err)
	}

	return e
}

// SeedCandidate creates a candidate with the given chain index.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, electionID uuid.UUID, chainIndex int) domain.Candidate {
	t.Helper()

	c := domain.Candidate{
		ID:         uuid.New(),
		ElectionID: electionID,
		Name:       "Candidate " + uniqueSuffix(),
		Party:      "Independent",
		ChainIndex: chainIndex,
		CreatedAt:  now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO candidates (id, election_id, name, party, chain_index, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.ElectionID, c.Name, c.Party, c.ChainIndex, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate: %v", err)
	}

	return c
}

// SeedEligibility marks the voter eligible for the election.
func SeedEligibility(t *testing.T, pool *pgxpool.Pool, voterID, electionID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO voter_eligibility (id, voter_id, election_id, eligible) VALUES ($1, $2, $3, TRUE)`,
		uuid.New(), voterID, electionID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEligibility: %v", err)
	}
}

// RandomHash returns a 0x-prefixed 32-byte hex string.
func RandomHash() string {
	a, b := uuid.New(), uuid.New()
	return fmt.Sprintf("0x%x%x", a[:], b[:])
}
