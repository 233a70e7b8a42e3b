package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// DecodeSubmission validates in and builds the transaction it describes
// without touching storage. Missing fields are reported before the line
// items are decoded.
func (s *Service) DecodeSubmission(in SubmitInput) (domain.Transaction, error) {
	if err := in.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	items, err := domain.DecodeLineItems(in.LineItems)
	if err != nil {
		return domain.Transaction{}, err
	}

	total, ok := domain.ParseDecimal(in.TotalAmount)
	if !ok {
		total = decimal.Zero
	}

	tx := s.newTransaction(in.UserName, items, total, in.Timestamp)
	if !ok {
		// The ledger row holds 0; the log keeps what the caller sent.
		s.log.Warn("unparsable total amount, recording zero",
			slog.String("transaction_id", tx.ID.String()),
			slog.String("user", tx.UserName),
			slog.String("total_amount", in.TotalAmount),
		)
	}
	return tx, nil
}

// SubmitTransaction records a multi-item transaction and then subtracts each
// item's quantity from the catalog stock.
//
// An error is returned only when nothing was recorded. Once the ledger row
// is appended the call succeeds; a failed stock update is logged and
// reported in SubmitResult.StockErr.
func (s *Service) SubmitTransaction(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	tx, err := s.DecodeSubmission(in)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Append(ctx, &tx); err != nil {
		return nil, fmt.Errorf("submit transaction: %w", err)
	}

	changes, stockErr := s.applyStock(ctx, tx.LineItems)
	if stockErr != nil {
		s.log.ErrorContext(ctx, "stock update failed after ledger append",
			slog.String("transaction_id", tx.ID.String()),
			slog.Int("applied", len(changes)),
			slog.String("error", stockErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "transaction recorded",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("user", tx.UserName),
		slog.Int("items", len(tx.LineItems)),
		slog.String("total", tx.TotalAmount.String()),
	)

	return &SubmitResult{Transaction: tx, StockChanges: changes, StockErr: stockErr}, nil
}

// SubmitLegacyItem records a single item with quantity 1 and no price.
// Catalog stock is never changed by this path.
func (s *Service) SubmitLegacyItem(ctx context.Context, in LegacyInput) (*SubmitResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	items := []domain.LineItem{{Name: strings.TrimSpace(in.ItemName), Quantity: 1, UnitPrice: decimal.Zero}}
	tx := s.newTransaction(in.UserName, items, decimal.Zero, in.Timestamp)

	if err := s.ledger.Append(ctx, &tx); err != nil {
		return nil, fmt.Errorf("submit legacy item: %w", err)
	}

	s.log.InfoContext(ctx, "legacy item recorded",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("user", tx.UserName),
		slog.String("item", items[0].Name),
	)

	return &SubmitResult{Transaction: tx, StockChanges: []domain.StockChange{}}, nil
}

func (s *Service) newTransaction(userName string, items []domain.LineItem, total decimal.Decimal, timestamp string) domain.Transaction {
	return domain.Transaction{
		ID:          s.newID(),
		UserName:    strings.TrimSpace(userName),
		LineItems:   items,
		TotalAmount: total,
		Timestamp:   domain.FormatTimestamp(timestamp, s.cfg.Location, s.cfg.TimestampLayout),
		ItemSummary: domain.RenderItemSummary(items),
		CreatedAt:   s.now(),
	}
}
