package users

import (
	"context"
	"sync"
)

var _ nameSource = &nameSourceMock{}

type nameSourceMock struct {
	ListUserNamesFunc func(ctx context.Context, table string) ([]string, error)

	calls struct {
		ListUserNames []struct {
			Ctx   context.Context
			Table string
		}
	}
	lockListUserNames sync.RWMutex
}

func (mock *nameSourceMock) ListUserNames(ctx context.Context, table string) ([]string, error) {
	if mock.ListUserNamesFunc == nil {
		panic("nameSourceMock.ListUserNamesFunc: method is nil but nameSource.ListUserNames was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Table string
	}{Ctx: ctx, Table: table}
	mock.lockListUserNames.Lock()
	mock.calls.ListUserNames = append(mock.calls.ListUserNames, callInfo)
	mock.lockListUserNames.Unlock()
	return mock.ListUserNamesFunc(ctx, table)
}

func (mock *nameSourceMock) ListUserNamesCalls() []struct {
	Ctx   context.Context
	Table string
} {
	mock.lockListUserNames.RLock()
	calls := mock.calls.ListUserNames
	mock.lockListUserNames.RUnlock()
	return calls
}
