package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/internal/service/voter"
	"sync"
)

var _ voterService = &voterServiceMock{}

type voterServiceMock struct {
	ApproveFunc     func(ctx context.Context, voterID uuid.UUID, actorID uuid.UUID) (domain.Voter, error)
	AssignFunc      func(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID, actorID uuid.UUID) error
	GetFunc         func(ctx context.Context, id uuid.UUID) (domain.Voter, error)
	ListPendingFunc func(ctx context.Context) ([]domain.Voter, error)
	RegisterFunc    func(ctx context.Context, in voter.RegisterInput) (domain.Voter, error)
	RejectFunc      func(ctx context.Context, voterID uuid.UUID, reason string, actorID uuid.UUID) (domain.Voter, error)

	calls struct {
		Approve []struct {
			Ctx     context.Context
			VoterID uuid.UUID
			ActorID uuid.UUID
		}
		Assign []struct {
			Ctx        context.Context
			VoterID    uuid.UUID
			ElectionID uuid.UUID
			ActorID    uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListPending []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx context.Context
			In  voter.RegisterInput
		}
		Reject []struct {
			Ctx     context.Context
			VoterID uuid.UUID
			Reason  string
			ActorID uuid.UUID
		}
	}
	lockApprove     sync.RWMutex
	lockAssign      sync.RWMutex
	lockGet         sync.RWMutex
	lockListPending sync.RWMutex
	lockRegister    sync.RWMutex
	lockReject      sync.RWMutex
}

func (mock *voterServiceMock) Approve(ctx context.Context, voterID uuid.UUID, actorID uuid.UUID) (domain.Voter, error) {
	if mock.ApproveFunc == nil {
		panic("voterServiceMock.ApproveFunc: method is nil but voterService.Approve was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		VoterID uuid.UUID
		ActorID uuid.UUID
	}{Ctx: ctx, VoterID: voterID, ActorID: actorID}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, voterID, actorID)
}

func (mock *voterServiceMock) ApproveCalls() []struct {
	Ctx     context.Context
	VoterID uuid.UUID
	ActorID uuid.UUID
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *voterServiceMock) Assign(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID, actorID uuid.UUID) error {
	if mock.AssignFunc == nil {
		panic("voterServiceMock.AssignFunc: method is nil but voterService.Assign was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VoterID    uuid.UUID
		ElectionID uuid.UUID
		ActorID    uuid.UUID
	}{Ctx: ctx, VoterID: voterID, ElectionID: electionID, ActorID: actorID}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, voterID, electionID, actorID)
}

func (mock *voterServiceMock) AssignCalls() []struct {
	Ctx        context.Context
	VoterID    uuid.UUID
	ElectionID uuid.UUID
	ActorID    uuid.UUID
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

func (mock *voterServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Voter, error) {
	if mock.GetFunc == nil {
		panic("voterServiceMock.GetFunc: method is nil but voterService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *voterServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *voterServiceMock) ListPending(ctx context.Context) ([]domain.Voter, error) {
	if mock.ListPendingFunc == nil {
		panic("voterServiceMock.ListPendingFunc: method is nil but voterService.ListPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx)
}

func (mock *voterServiceMock) ListPendingCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *voterServiceMock) Register(ctx context.Context, in voter.RegisterInput) (domain.Voter, error) {
	if mock.RegisterFunc == nil {
		panic("voterServiceMock.RegisterFunc: method is nil but voterService.Register was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  voter.RegisterInput
	}{Ctx: ctx, In: in}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, in)
}

func (mock *voterServiceMock) RegisterCalls() []struct {
	Ctx context.Context
	In  voter.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *voterServiceMock) Reject(ctx context.Context, voterID uuid.UUID, reason string, actorID uuid.UUID) (domain.Voter, error) {
	if mock.RejectFunc == nil {
		panic("voterServiceMock.RejectFunc: method is nil but voterService.Reject was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		VoterID uuid.UUID
		Reason  string
		ActorID uuid.UUID
	}{Ctx: ctx, VoterID: voterID, Reason: reason, ActorID: actorID}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, voterID, reason, actorID)
}

func (mock *voterServiceMock) RejectCalls() []struct {
	Ctx     context.Context
	VoterID uuid.UUID
	Reason  string
	ActorID uuid.UUID
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}
