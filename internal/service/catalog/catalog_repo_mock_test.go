package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	ListRowsFunc           func(ctx context.Context) ([]domain.CatalogRow, error)
	GetRowFunc             func(ctx context.Context, position int64) (domain.CatalogRow, error)
	CompareAndSetStockFunc func(ctx context.Context, position, expectedVersion int64, stock int) (int64, error)
	InsertFunc             func(ctx context.Context, entries []domain.CatalogEntry) error
	DeleteAllFunc          func(ctx context.Context) error

	calls struct {
		ListRows []struct {
			Ctx context.Context
		}
		GetRow []struct {
			Ctx      context.Context
			Position int64
		}
		CompareAndSetStock []struct {
			Ctx             context.Context
			Position        int64
			ExpectedVersion int64
			Stock           int
		}
		Insert []struct {
			Ctx     context.Context
			Entries []domain.CatalogEntry
		}
		DeleteAll []struct {
			Ctx context.Context
		}
	}
	lockListRows           sync.RWMutex
	lockGetRow             sync.RWMutex
	lockCompareAndSetStock sync.RWMutex
	lockInsert             sync.RWMutex
	lockDeleteAll          sync.RWMutex
}

func (mock *catalogRepoMock) ListRows(ctx context.Context) ([]domain.CatalogRow, error) {
	if mock.ListRowsFunc == nil {
		panic("catalogRepoMock.ListRowsFunc: method is nil but catalogRepo.ListRows was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListRows.Lock()
	mock.calls.ListRows = append(mock.calls.ListRows, callInfo)
	mock.lockListRows.Unlock()
	return mock.ListRowsFunc(ctx)
}

func (mock *catalogRepoMock) ListRowsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListRows.RLock()
	calls := mock.calls.ListRows
	mock.lockListRows.RUnlock()
	return calls
}

func (mock *catalogRepoMock) GetRow(ctx context.Context, position int64) (domain.CatalogRow, error) {
	if mock.GetRowFunc == nil {
		panic("catalogRepoMock.GetRowFunc: method is nil but catalogRepo.GetRow was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Position int64
	}{Ctx: ctx, Position: position}
	mock.lockGetRow.Lock()
	mock.calls.GetRow = append(mock.calls.GetRow, callInfo)
	mock.lockGetRow.Unlock()
	return mock.GetRowFunc(ctx, position)
}

func (mock *catalogRepoMock) GetRowCalls() []struct {
	Ctx      context.Context
	Position int64
} {
	mock.lockGetRow.RLock()
	calls := mock.calls.GetRow
	mock.lockGetRow.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CompareAndSetStock(ctx context.Context, position, expectedVersion int64, stock int) (int64, error) {
	if mock.CompareAndSetStockFunc == nil {
		panic("catalogRepoMock.CompareAndSetStockFunc: method is nil but catalogRepo.CompareAndSetStock was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		Position        int64
		ExpectedVersion int64
		Stock           int
	}{Ctx: ctx, Position: position, ExpectedVersion: expectedVersion, Stock: stock}
	mock.lockCompareAndSetStock.Lock()
	mock.calls.CompareAndSetStock = append(mock.calls.CompareAndSetStock, callInfo)
	mock.lockCompareAndSetStock.Unlock()
	return mock.CompareAndSetStockFunc(ctx, position, expectedVersion, stock)
}

func (mock *catalogRepoMock) CompareAndSetStockCalls() []struct {
	Ctx             context.Context
	Position        int64
	ExpectedVersion int64
	Stock           int
} {
	mock.lockCompareAndSetStock.RLock()
	calls := mock.calls.CompareAndSetStock
	mock.lockCompareAndSetStock.RUnlock()
	return calls
}

func (mock *catalogRepoMock) Insert(ctx context.Context, entries []domain.CatalogEntry) error {
	if mock.InsertFunc == nil {
		panic("catalogRepoMock.InsertFunc: method is nil but catalogRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.CatalogEntry
	}{Ctx: ctx, Entries: entries}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, entries)
}

func (mock *catalogRepoMock) InsertCalls() []struct {
	Ctx     context.Context
	Entries []domain.CatalogEntry
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *catalogRepoMock) DeleteAll(ctx context.Context) error {
	if mock.DeleteAllFunc == nil {
		panic("catalogRepoMock.DeleteAllFunc: method is nil but catalogRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *catalogRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
