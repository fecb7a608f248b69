package passcode

import (
	"context"
	"github.com/heartmarshall/evoting-backend/internal/domain"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendFunc func(ctx context.Context, msg domain.Notification) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg domain.Notification
		}
	}
	lockSend sync.RWMutex
}

func (mock *notifierMock) Send(ctx context.Context, msg domain.Notification) error {
	if mock.SendFunc == nil {
		panic("notifierMock.SendFunc: method is nil but notifier.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.Notification
	}{Ctx: ctx, Msg: msg}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *notifierMock) SendCalls() []struct {
	Ctx context.Context
	Msg domain.Notification
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
