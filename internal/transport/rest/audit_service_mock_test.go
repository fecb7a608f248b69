package rest

import (
	"context"
	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/internal/service/audit"
	"sync"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	ListFunc             func(ctx context.Context, page audit.Page) ([]domain.AuditEntry, error)
	ListTransactionsFunc func(ctx context.Context, page audit.Page) ([]domain.AuditEntry, error)

	calls struct {
		List []struct {
			Ctx  context.Context
			Page audit.Page
		}
		ListTransactions []struct {
			Ctx  context.Context
			Page audit.Page
		}
	}
	lockList             sync.RWMutex
	lockListTransactions sync.RWMutex
}

func (mock *auditServiceMock) List(ctx context.Context, page audit.Page) ([]domain.AuditEntry, error) {
	if mock.ListFunc == nil {
		panic("auditServiceMock.ListFunc: method is nil but auditService.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page audit.Page
	}{Ctx: ctx, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *auditServiceMock) ListCalls() []struct {
	Ctx  context.Context
	Page audit.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *auditServiceMock) ListTransactions(ctx context.Context, page audit.Page) ([]domain.AuditEntry, error) {
	if mock.ListTransactionsFunc == nil {
		panic("auditServiceMock.ListTransactionsFunc: method is nil but auditService.ListTransactions was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page audit.Page
	}{Ctx: ctx, Page: page}
	mock.lockListTransactions.Lock()
	mock.calls.ListTransactions = append(mock.calls.ListTransactions, callInfo)
	mock.lockListTransactions.Unlock()
	return mock.ListTransactionsFunc(ctx, page)
}

func (mock *auditServiceMock) ListTransactionsCalls() []struct {
	Ctx  context.Context
	Page audit.Page
} {
	mock.lockListTransactions.RLock()
	calls := mock.calls.ListTransactions
	mock.lockListTransactions.RUnlock()
	return calls
}
