package voter

import (
	"context"
	"sync"
)

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	RegisterVoterFunc func(ctx context.Context, wallet string) (string, error)

	calls struct {
		RegisterVoter []struct {
			Ctx    context.Context
			Wallet string
		}
	}
	lockRegisterVoter sync.RWMutex
}

func (mock *ledgerMock) RegisterVoter(ctx context.Context, wallet string) (string, error) {
	if mock.RegisterVoterFunc == nil {
		panic("ledgerMock.RegisterVoterFunc: method is nil but ledger.RegisterVoter was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Wallet string
	}{Ctx: ctx, Wallet: wallet}
	mock.lockRegisterVoter.Lock()
	mock.calls.RegisterVoter = append(mock.calls.RegisterVoter, callInfo)
	mock.lockRegisterVoter.Unlock()
	return mock.RegisterVoterFunc(ctx, wallet)
}

func (mock *ledgerMock) RegisterVoterCalls() []struct {
	Ctx    context.Context
	Wallet string
} {
	mock.lockRegisterVoter.RLock()
	calls := mock.calls.RegisterVoter
	mock.lockRegisterVoter.RUnlock()
	return calls
}
