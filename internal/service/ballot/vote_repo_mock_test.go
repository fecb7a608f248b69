package ballot

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/evoting-backend/internal/domain"
	"sync"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	HasParticipatedFunc    func(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error)
	ListParticipationsFunc func(ctx context.Context, voterID uuid.UUID) ([]domain.VoteRecord, error)
	NullifierUsedFunc      func(ctx context.Context, nullifier string) (bool, error)
	RecordFunc             func(ctx context.Context, voterID uuid.UUID, v domain.Vote) (domain.Vote, error)

	calls struct {
		HasParticipated []struct {
			Ctx        context.Context
			VoterID    uuid.UUID
			ElectionID uuid.UUID
		}
		ListParticipations []struct {
			Ctx     context.Context
			VoterID uuid.UUID
		}
		NullifierUsed []struct {
			Ctx       context.Context
			Nullifier string
		}
		Record []struct {
			Ctx     context.Context
			VoterID uuid.UUID
			V       domain.Vote
		}
	}
	lockHasParticipated    sync.RWMutex
	lockListParticipations sync.RWMutex
	lockNullifierUsed      sync.RWMutex
	lockRecord             sync.RWMutex
}

func (mock *voteRepoMock) HasParticipated(ctx context.Context, voterID uuid.UUID, electionID uuid.UUID) (bool, error) {
	if mock.HasParticipatedFunc == nil {
		panic("voteRepoMock.HasParticipatedFunc: method is nil but voteRepo.HasParticipated was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VoterID    uuid.UUID
		ElectionID uuid.UUID
	}{Ctx: ctx, VoterID: voterID, ElectionID: electionID}
	mock.lockHasParticipated.Lock()
	mock.calls.HasParticipated = append(mock.calls.HasParticipated, callInfo)
	mock.lockHasParticipated.Unlock()
	return mock.HasParticipatedFunc(ctx, voterID, electionID)
}

func (mock *voteRepoMock) HasParticipatedCalls() []struct {
	Ctx        context.Context
	VoterID    uuid.UUID
	ElectionID uuid.UUID
} {
	mock.lockHasParticipated.RLock()
	calls := mock.calls.HasParticipated
	mock.lockHasParticipated.RUnlock()
	return calls
}

func (mock *voteRepoMock) ListParticipations(ctx context.Context, voterID uuid.UUID) ([]domain.VoteRecord, error) {
	if mock.ListParticipationsFunc == nil {
		panic("voteRepoMock.ListParticipationsFunc: method is nil but voteRepo.ListParticipations was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		VoterID uuid.UUID
	}{Ctx: ctx, VoterID: voterID}
	mock.lockListParticipations.Lock()
	mock.calls.ListParticipations = append(mock.calls.ListParticipations, callInfo)
	mock.lockListParticipations.Unlock()
	return mock.ListParticipationsFunc(ctx, voterID)
}

func (mock *voteRepoMock) ListParticipationsCalls() []struct {
	Ctx     context.Context
	VoterID uuid.UUID
} {
	mock.lockListParticipations.RLock()
	calls := mock.calls.ListParticipations
	mock.lockListParticipations.RUnlock()
	return calls
}

func (mock *voteRepoMock) NullifierUsed(ctx context.Context, nullifier string) (bool, error) {
	if mock.NullifierUsedFunc == nil {
		panic("voteRepoMock.NullifierUsedFunc: method is nil but voteRepo.NullifierUsed was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Nullifier string
	}{Ctx: ctx, Nullifier: nullifier}
	mock.lockNullifierUsed.Lock()
	mock.calls.NullifierUsed = append(mock.calls.NullifierUsed, callInfo)
	mock.lockNullifierUsed.Unlock()
	return mock.NullifierUsedFunc(ctx, nullifier)
}

func (mock *voteRepoMock) NullifierUsedCalls() []struct {
	Ctx       context.Context
	Nullifier string
} {
	mock.lockNullifierUsed.RLock()
	calls := mock.calls.NullifierUsed
	mock.lockNullifierUsed.RUnlock()
	return calls
}

func (mock *voteRepoMock) Record(ctx context.Context, voterID uuid.UUID, v domain.Vote) (domain.Vote, error) {
	if mock.RecordFunc == nil {
		panic("voteRepoMock.RecordFunc: method is nil but voteRepo.Record was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		VoterID uuid.UUID
		V       domain.Vote
	}{Ctx: ctx, VoterID: voterID, V: v}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, voterID, v)
}

func (mock *voteRepoMock) RecordCalls() []struct {
	Ctx     context.Context
	VoterID uuid.UUID
	V       domain.Vote
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
