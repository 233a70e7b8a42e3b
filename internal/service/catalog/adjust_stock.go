package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// AdjustStock subtracts delta from the stock of row and returns the row as
// written. The write only lands if the row is unchanged since it was read;
// on conflict the row is re-read and the subtraction retried against the
// fresh value. Stock is never clamped, so it may go negative, but a
// subtraction that would overflow int is rejected without writing.
//
// Returns an error wrapping domain.ErrConcurrentModification when every
// attempt lost to a concurrent writer.
func (s *Service) AdjustStock(ctx context.Context, row domain.CatalogRow, delta int) (domain.CatalogRow, error) {
	current := row
	stale := false

	op := func() (domain.CatalogRow, error) {
		if stale {
			fresh, err := s.repo.GetRow(ctx, current.Position)
			if err != nil {
				return domain.CatalogRow{}, backoff.Permanent(fmt.Errorf("reload catalog row %d: %w", current.Position, err))
			}
			current = fresh
		}

		stock := current.Stock()
		if (delta > 0 && stock < math.MinInt+delta) || (delta < 0 && stock > math.MaxInt+delta) {
			return domain.CatalogRow{}, backoff.Permanent(fmt.Errorf("stock %d minus %d overflows", stock, delta))
		}
		next := stock - delta
		version, err := s.repo.CompareAndSetStock(ctx, current.Position, current.Version, next)
		if err != nil {
			if errors.Is(err, domain.ErrConcurrentModification) {
				stale = true
				return domain.CatalogRow{}, err
			}
			return domain.CatalogRow{}, backoff.Permanent(err)
		}

		written := current
		written.StockRaw = strconv.Itoa(next)
		written.Version = version
		return written, nil
	}

	notify := func(err error, wait time.Duration) {
		s.log.DebugContext(ctx, "stock write conflict, retrying",
			slog.String("item", current.Name),
			slog.Int64("position", current.Position),
			slog.Duration("wait", wait),
		)
	}

	written, err := backoff.RetryNotifyWithData(op, s.retryPolicy(ctx), notify)
	if err != nil {
		return domain.CatalogRow{}, fmt.Errorf("adjust stock of %q: %w", row.Name, err)
	}
	return written, nil
}

func (s *Service) retryPolicy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = s.stock.RetryInitialInterval
	exp.MaxInterval = s.stock.RetryMaxInterval
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, s.stock.MaxRetries), ctx)
}
