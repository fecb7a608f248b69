package rest

import (
	"context"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ passcodeService = &passcodeServiceMock{}

type passcodeServiceMock struct {
	RequestFunc func(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (time.Time, error)
	VerifyFunc  func(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID, code string) (string, error)

	calls struct {
		Request []struct {
			Ctx        context.Context
			VoterID    uuid.UUID
			ElectionID uuid.UUID
		}
		Verify []struct {
			Ctx        context.Context
			VoterID    uuid.UUID
			ElectionID uuid.UUID
			Code       string
		}
	}
	lockRequest sync.RWMutex
	lockVerify  sync.RWMutex
}

func (mock *passcodeServiceMock) Request(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (time.Time, error) {
	if mock.RequestFunc == nil {
		panic("passcodeServiceMock.RequestFunc: method is nil but passcodeService.Request was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VoterID    uuid.UUID
		ElectionID uuid.UUID
	}{Ctx: ctx, VoterID: voterID, ElectionID: electionID}
	mock.lockRequest.Lock()
	mock.calls.Request = append(mock.calls.Request, callInfo)
	mock.lockRequest.Unlock()
	return mock.RequestFunc(ctx, voterID, electionID)
}

func (mock *passcodeServiceMock) RequestCalls() []struct {
	Ctx        context.Context
	VoterID    uuid.UUID
	ElectionID uuid.UUID
} {
	mock.lockRequest.RLock()
	calls := mock.calls.Request
	mock.lockRequest.RUnlock()
	return calls
}

func (mock *passcodeServiceMock) Verify(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID, code string) (string, error) {
	if mock.VerifyFunc == nil {
		panic("passcodeServiceMock.VerifyFunc: method is nil but passcodeService.Verify was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VoterID    uuid.UUID
		ElectionID uuid.UUID
		Code       string
	}{Ctx: ctx, VoterID: voterID, ElectionID: electionID, Code: code}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, voterID, electionID, code)
}

func (mock *passcodeServiceMock) VerifyCalls() []struct {
	Ctx        context.Context
	VoterID    uuid.UUID
	ElectionID uuid.UUID
	Code       string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
