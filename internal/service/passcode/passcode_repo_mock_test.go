package passcode

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/evoting-backend/internal/domain"
	"sync"
	"time"
)

var _ passcodeRepo = &passcodeRepoMock{}

type passcodeRepoMock struct {
	ConsumeFunc       func(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID, codeHash string, now time.Time) (domain.Passcode, error)
	CreateFunc        func(ctx context.Context, p domain.Passcode) error
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int, error)

	calls struct {
		Consume []struct {
			Ctx        context.Context
			VoterID    uuid.UUID
			ElectionID uuid.UUID
			CodeHash   string
			Now        time.Time
		}
		Create []struct {
			Ctx context.Context
			P   domain.Passcode
		}
		DeleteExpired []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockConsume       sync.RWMutex
	lockCreate        sync.RWMutex
	lockDeleteExpired sync.RWMutex
}

func (mock *passcodeRepoMock) Consume(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID, codeHash string, now time.Time) (domain.Passcode, error) {
	if mock.ConsumeFunc == nil {
		panic("passcodeRepoMock.ConsumeFunc: method is nil but passcodeRepo.Consume was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VoterID    uuid.UUID
		ElectionID uuid.UUID
		CodeHash   string
		Now        time.Time
	}{Ctx: ctx, VoterID: voterID, ElectionID: electionID, CodeHash: codeHash, Now: now}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, callInfo)
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, voterID, electionID, codeHash, now)
}

func (mock *passcodeRepoMock) ConsumeCalls() []struct {
	Ctx        context.Context
	VoterID    uuid.UUID
	ElectionID uuid.UUID
	CodeHash   string
	Now        time.Time
} {
	mock.lockConsume.RLock()
	calls := mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}

func (mock *passcodeRepoMock) Create(ctx context.Context, p domain.Passcode) error {
	if mock.CreateFunc == nil {
		panic("passcodeRepoMock.CreateFunc: method is nil but passcodeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Passcode
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *passcodeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Passcode
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *passcodeRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("passcodeRepoMock.DeleteExpiredFunc: method is nil but passcodeRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *passcodeRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
