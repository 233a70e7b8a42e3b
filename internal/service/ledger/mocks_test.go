package ledger

import (
	"context"
	"sync"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

var _ ledgerStore = &ledgerStoreMock{}

type ledgerStoreMock struct {
	AppendFunc func(ctx context.Context, tx *domain.Transaction) error
	ListFunc   func(ctx context.Context, limit, offset int) ([]domain.Transaction, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Tx  *domain.Transaction
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockAppend sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *ledgerStoreMock) Append(ctx context.Context, tx *domain.Transaction) error {
	if mock.AppendFunc == nil {
		panic("ledgerStoreMock.AppendFunc: method is nil but ledgerStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tx  *domain.Transaction
	}{Ctx: ctx, Tx: tx}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, tx)
}

func (mock *ledgerStoreMock) AppendCalls() []struct {
	Ctx context.Context
	Tx  *domain.Transaction
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *ledgerStoreMock) List(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	if mock.ListFunc == nil {
		panic("ledgerStoreMock.ListFunc: method is nil but ledgerStore.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *ledgerStoreMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ stockKeeper = &stockKeeperMock{}

type stockKeeperMock struct {
	ReadStockMapFunc func(ctx context.Context) (map[string]domain.CatalogRow, error)
	AdjustStockFunc  func(ctx context.Context, row domain.CatalogRow, delta int) (domain.CatalogRow, error)

	calls struct {
		ReadStockMap []struct {
			Ctx context.Context
		}
		AdjustStock []struct {
			Ctx   context.Context
			Row   domain.CatalogRow
			Delta int
		}
	}
	lockReadStockMap sync.RWMutex
	lockAdjustStock  sync.RWMutex
}

func (mock *stockKeeperMock) ReadStockMap(ctx context.Context) (map[string]domain.CatalogRow, error) {
	if mock.ReadStockMapFunc == nil {
		panic("stockKeeperMock.ReadStockMapFunc: method is nil but stockKeeper.ReadStockMap was just called")
	}
	mock.lockReadStockMap.Lock()
	mock.calls.ReadStockMap = append(mock.calls.ReadStockMap, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockReadStockMap.Unlock()
	return mock.ReadStockMapFunc(ctx)
}

func (mock *stockKeeperMock) ReadStockMapCalls() []struct {
	Ctx context.Context
} {
	mock.lockReadStockMap.RLock()
	calls := mock.calls.ReadStockMap
	mock.lockReadStockMap.RUnlock()
	return calls
}

func (mock *stockKeeperMock) AdjustStock(ctx context.Context, row domain.CatalogRow, delta int) (domain.CatalogRow, error) {
	if mock.AdjustStockFunc == nil {
		panic("stockKeeperMock.AdjustStockFunc: method is nil but stockKeeper.AdjustStock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Row   domain.CatalogRow
		Delta int
	}{Ctx: ctx, Row: row, Delta: delta}
	mock.lockAdjustStock.Lock()
	mock.calls.AdjustStock = append(mock.calls.AdjustStock, callInfo)
	mock.lockAdjustStock.Unlock()
	return mock.AdjustStockFunc(ctx, row, delta)
}

func (mock *stockKeeperMock) AdjustStockCalls() []struct {
	Ctx   context.Context
	Row   domain.CatalogRow
	Delta int
} {
	mock.lockAdjustStock.RLock()
	calls := mock.calls.AdjustStock
	mock.lockAdjustStock.RUnlock()
	return calls
}
