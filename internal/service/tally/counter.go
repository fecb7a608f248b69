package tally

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type storeCounts interface {
	CountByCandidate(ctx context.Context, electionID uuid.UUID) (map[uuid.UUID]int64, error)
}

// StoreCounter counts votes recorded in PostgreSQL.
type StoreCounter struct {
	votes storeCounts
}

func NewStoreCounter(votes storeCounts) *StoreCounter {
	return &StoreCounter{votes: votes}
}

func (c *StoreCounter) Count(ctx context.Context, electionID uuid.UUID, _ []domain.Candidate) (map[uuid.UUID]int64, error) {
	return c.votes.CountByCandidate(ctx, electionID)
}

type ledgerCounts interface {
	GetVotes(ctx context.Context, chainIndex int) (int64, error)
}

// LedgerCounter reads getVotes(chainIndex) for every candidate, at most
// limit calls at a time. Any failure fails the whole count.
type LedgerCounter struct {
	ledger ledgerCounts
	limit  int
}

func NewLedgerCounter(ledger ledgerCounts, limit int) *LedgerCounter {
	if limit <= 0 {
		limit = 1
	}
	return &LedgerCounter{ledger: ledger, limit: limit}
}

func (c *LedgerCounter) Count(ctx context.Context, _ uuid.UUID, candidates []domain.Candidate) (map[uuid.UUID]int64, error) {
	var (
		mu     sync.Mutex
		counts = make(map[uuid.UUID]int64, len(candidates))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)
	for _, cand := range candidates {
		g.Go(func() error {
			n, err := c.ledger.GetVotes(ctx, cand.ChainIndex)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", cand.ChainIndex, err)
			}
			mu.Lock()
			counts[cand.ID] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
