package tally

import (
	"context"
	"sync"
)

var _ ledgerCounts = &ledgerCountsMock{}

type ledgerCountsMock struct {
	GetVotesFunc func(ctx context.Context, chainIndex int) (int64, error)

	calls struct {
		GetVotes []struct {
			Ctx        context.Context
			ChainIndex int
		}
	}
	lockGetVotes sync.RWMutex
}

func (mock *ledgerCountsMock) GetVotes(ctx context.Context, chainIndex int) (int64, error) {
	if mock.GetVotesFunc == nil {
		panic("ledgerCountsMock.GetVotesFunc: method is nil but ledgerCounts.GetVotes was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ChainIndex int
	}{Ctx: ctx, ChainIndex: chainIndex}
	mock.lockGetVotes.Lock()
	mock.calls.GetVotes = append(mock.calls.GetVotes, callInfo)
	mock.lockGetVotes.Unlock()
	return mock.GetVotesFunc(ctx, chainIndex)
}

func (mock *ledgerCountsMock) GetVotesCalls() []struct {
	Ctx        context.Context
	ChainIndex int
} {
	mock.lockGetVotes.RLock()
	calls := mock.calls.GetVotes
	mock.lockGetVotes.RUnlock()
	return calls
}
