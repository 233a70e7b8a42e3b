package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
	"github.com/heartmarshall/lodgeshop-backend/internal/service/ledger"
)

var (
	_ userLister         = &userListerMock{}
	_ itemLister         = &itemListerMock{}
	_ transactionService = &transactionServiceMock{}
)

type userListerMock struct {
	ListUsersFunc func(ctx context.Context) ([]string, error)

	calls struct {
		ListUsers []struct {
			Ctx context.Context
		}
	}
	lockListUsers sync.RWMutex
}

func (mock *userListerMock) ListUsers(ctx context.Context) ([]string, error) {
	if mock.ListUsersFunc == nil {
		panic("userListerMock.ListUsersFunc: method is nil but userLister.ListUsers was just called")
	}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userListerMock) ListUsersCalls() []struct{ Ctx context.Context } {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

type itemListerMock struct {
	ListItemsFunc func(ctx context.Context) ([]domain.CatalogEntry, error)

	calls struct {
		ListItems []struct {
			Ctx context.Context
		}
	}
	lockListItems sync.RWMutex
}

func (mock *itemListerMock) ListItems(ctx context.Context) ([]domain.CatalogEntry, error) {
	if mock.ListItemsFunc == nil {
		panic("itemListerMock.ListItemsFunc: method is nil but itemLister.ListItems was just called")
	}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx)
}

func (mock *itemListerMock) ListItemsCalls() []struct{ Ctx context.Context } {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

type transactionServiceMock struct {
	SubmitTransactionFunc func(ctx context.Context, in ledger.SubmitInput) (*ledger.SubmitResult, error)
	SubmitLegacyItemFunc  func(ctx context.Context, in ledger.LegacyInput) (*ledger.SubmitResult, error)
	ListTransactionsFunc  func(ctx context.Context, limit, offset int) ([]domain.Transaction, error)

	calls struct {
		SubmitTransaction []struct {
			Ctx context.Context
			In  ledger.SubmitInput
		}
		SubmitLegacyItem []struct {
			Ctx context.Context
			In  ledger.LegacyInput
		}
		ListTransactions []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockSubmitTransaction sync.RWMutex
	lockSubmitLegacyItem  sync.RWMutex
	lockListTransactions  sync.RWMutex
}

func (mock *transactionServiceMock) SubmitTransaction(ctx context.Context, in ledger.SubmitInput) (*ledger.SubmitResult, error) {
	if mock.SubmitTransactionFunc == nil {
		panic("transactionServiceMock.SubmitTransactionFunc: method is nil but transactionService.SubmitTransaction was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  ledger.SubmitInput
	}{Ctx: ctx, In: in}
	mock.lockSubmitTransaction.Lock()
	mock.calls.SubmitTransaction = append(mock.calls.SubmitTransaction, callInfo)
	mock.lockSubmitTransaction.Unlock()
	return mock.SubmitTransactionFunc(ctx, in)
}

func (mock *transactionServiceMock) SubmitTransactionCalls() []struct {
	Ctx context.Context
	In  ledger.SubmitInput
} {
	mock.lockSubmitTransaction.RLock()
	calls := mock.calls.SubmitTransaction
	mock.lockSubmitTransaction.RUnlock()
	return calls
}

func (mock *transactionServiceMock) SubmitLegacyItem(ctx context.Context, in ledger.LegacyInput) (*ledger.SubmitResult, error) {
	if mock.SubmitLegacyItemFunc == nil {
		panic("transactionServiceMock.SubmitLegacyItemFunc: method is nil but transactionService.SubmitLegacyItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  ledger.LegacyInput
	}{Ctx: ctx, In: in}
	mock.lockSubmitLegacyItem.Lock()
	mock.calls.SubmitLegacyItem = append(mock.calls.SubmitLegacyItem, callInfo)
	mock.lockSubmitLegacyItem.Unlock()
	return mock.SubmitLegacyItemFunc(ctx, in)
}

func (mock *transactionServiceMock) SubmitLegacyItemCalls() []struct {
	Ctx context.Context
	In  ledger.LegacyInput
} {
	mock.lockSubmitLegacyItem.RLock()
	calls := mock.calls.SubmitLegacyItem
	mock.lockSubmitLegacyItem.RUnlock()
	return calls
}

func (mock *transactionServiceMock) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	if mock.ListTransactionsFunc == nil {
		panic("transactionServiceMock.ListTransactionsFunc: method is nil but transactionService.ListTransactions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListTransactions.Lock()
	mock.calls.ListTransactions = append(mock.calls.ListTransactions, callInfo)
	mock.lockListTransactions.Unlock()
	return mock.ListTransactionsFunc(ctx, limit, offset)
}

func (mock *transactionServiceMock) ListTransactionsCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListTransactions.RLock()
	calls := mock.calls.ListTransactions
	mock.lockListTransactions.RUnlock()
	return calls
}
