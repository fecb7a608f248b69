package ballot

import (
	"context"
	"sync"
)

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	ConfirmedFunc func(ctx context.Context, txID string) (bool, error)
	VoteFunc      func(ctx context.Context, chainIndex int, nullifier string) (string, error)

	calls struct {
		Confirmed []struct {
			Ctx  context.Context
			TxID string
		}
		Vote []struct {
			Ctx        context.Context
			ChainIndex int
			Nullifier  string
		}
	}
	lockConfirmed sync.RWMutex
	lockVote      sync.RWMutex
}

func (mock *ledgerMock) Confirmed(ctx context.Context, txID string) (bool, error) {
	if mock.ConfirmedFunc == nil {
		panic("ledgerMock.ConfirmedFunc: method is nil but ledger.Confirmed was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		TxID string
	}{Ctx: ctx, TxID: txID}
	mock.lockConfirmed.Lock()
	mock.calls.Confirmed = append(mock.calls.Confirmed, callInfo)
	mock.lockConfirmed.Unlock()
	return mock.ConfirmedFunc(ctx, txID)
}

func (mock *ledgerMock) ConfirmedCalls() []struct {
	Ctx  context.Context
	TxID string
} {
	mock.lockConfirmed.RLock()
	calls := mock.calls.Confirmed
	mock.lockConfirmed.RUnlock()
	return calls
}

func (mock *ledgerMock) Vote(ctx context.Context, chainIndex int, nullifier string) (string, error) {
	if mock.VoteFunc == nil {
		panic("ledgerMock.VoteFunc: method is nil but ledger.Vote was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ChainIndex int
		Nullifier  string
	}{Ctx: ctx, ChainIndex: chainIndex, Nullifier: nullifier}
	mock.lockVote.Lock()
	mock.calls.Vote = append(mock.calls.Vote, callInfo)
	mock.lockVote.Unlock()
	return mock.VoteFunc(ctx, chainIndex, nullifier)
}

func (mock *ledgerMock) VoteCalls() []struct {
	Ctx        context.Context
	ChainIndex int
	Nullifier  string
} {
	mock.lockVote.RLock()
	calls := mock.calls.Vote
	mock.lockVote.RUnlock()
	return calls
}
