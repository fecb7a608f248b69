package election

import (
	"context"
	"sync"
)

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	AddCandidateFunc  func(ctx context.Context, name string, party string) (string, error)
	EndElectionFunc   func(ctx context.Context) (string, error)
	StartElectionFunc func(ctx context.Context) (string, error)

	calls struct {
		AddCandidate []struct {
			Ctx   context.Context
			Name  string
			Party string
		}
		EndElection []struct {
			Ctx context.Context
		}
		StartElection []struct {
			Ctx context.Context
		}
	}
	lockAddCandidate  sync.RWMutex
	lockEndElection   sync.RWMutex
	lockStartElection sync.RWMutex
}

func (mock *ledgerMock) AddCandidate(ctx context.Context, name string, party string) (string, error) {
	if mock.AddCandidateFunc == nil {
		panic("ledgerMock.AddCandidateFunc: method is nil but ledger.AddCandidate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Name  string
		Party string
	}{Ctx: ctx, Name: name, Party: party}
	mock.lockAddCandidate.Lock()
	mock.calls.AddCandidate = append(mock.calls.AddCandidate, callInfo)
	mock.lockAddCandidate.Unlock()
	return mock.AddCandidateFunc(ctx, name, party)
}

func (mock *ledgerMock) AddCandidateCalls() []struct {
	Ctx   context.Context
	Name  string
	Party string
} {
	mock.lockAddCandidate.RLock()
	calls := mock.calls.AddCandidate
	mock.lockAddCandidate.RUnlock()
	return calls
}

func (mock *ledgerMock) EndElection(ctx context.Context) (string, error) {
	if mock.EndElectionFunc == nil {
		panic("ledgerMock.EndElectionFunc: method is nil but ledger.EndElection was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockEndElection.Lock()
	mock.calls.EndElection = append(mock.calls.EndElection, callInfo)
	mock.lockEndElection.Unlock()
	return mock.EndElectionFunc(ctx)
}

func (mock *ledgerMock) EndElectionCalls() []struct {
	Ctx context.Context
} {
	mock.lockEndElection.RLock()
	calls := mock.calls.EndElection
	mock.lockEndElection.RUnlock()
	return calls
}

func (mock *ledgerMock) StartElection(ctx context.Context) (string, error) {
	if mock.StartElectionFunc == nil {
		panic("ledgerMock.StartElectionFunc: method is nil but ledger.StartElection was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStartElection.Lock()
	mock.calls.StartElection = append(mock.calls.StartElection, callInfo)
	mock.lockStartElection.Unlock()
	return mock.StartElectionFunc(ctx)
}

func (mock *ledgerMock) StartElectionCalls() []struct {
	Ctx context.Context
} {
	mock.lockStartElection.RLock()
	calls := mock.calls.StartElection
	mock.lockStartElection.RUnlock()
	return calls
}
