package voter

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/evoting-backend/internal/domain"
	"sync"
)

var _ eligibilityRepo = &eligibilityRepoMock{}

type eligibilityRepoMock struct {
	CreateFunc     func(ctx context.Context, e domain.Eligibility) error
	IsEligibleFunc func(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.Eligibility
		}
		IsEligible []struct {
			Ctx        context.Context
			VoterID    uuid.UUID
			ElectionID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockIsEligible sync.RWMutex
}

func (mock *eligibilityRepoMock) Create(ctx context.Context, e domain.Eligibility) error {
	if mock.CreateFunc == nil {
		panic("eligibilityRepoMock.CreateFunc: method is nil but eligibilityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Eligibility
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eligibilityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.Eligibility
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eligibilityRepoMock) IsEligible(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error) {
	if mock.IsEligibleFunc == nil {
		panic("eligibilityRepoMock.IsEligibleFunc: method is nil but eligibilityRepo.IsEligible was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VoterID    uuid.UUID
		ElectionID uuid.UUID
	}{Ctx: ctx, VoterID: voterID, ElectionID: electionID}
	mock.lockIsEligible.Lock()
	mock.calls.IsEligible = append(mock.calls.IsEligible, callInfo)
	mock.lockIsEligible.Unlock()
	return mock.IsEligibleFunc(ctx, voterID, electionID)
}

func (mock *eligibilityRepoMock) IsEligibleCalls() []struct {
	Ctx        context.Context
	VoterID    uuid.UUID
	ElectionID uuid.UUID
} {
	mock.lockIsEligible.RLock()
	calls := mock.calls.IsEligible
	mock.lockIsEligible.RUnlock()
	return calls
}
