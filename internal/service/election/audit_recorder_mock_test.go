package election

import (
	"context"
	"github.com/heartmarshall/evoting-backend/internal/domain"
	"sync"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, entry domain.AuditEntry)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Entry domain.AuditEntry
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, entry domain.AuditEntry) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.AuditEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, entry)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx   context.Context
	Entry domain.AuditEntry
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
