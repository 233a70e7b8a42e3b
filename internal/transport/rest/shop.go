package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
	"github.com/heartmarshall/lodgeshop-backend/internal/service/ledger"
)

// Banner is returned for GET requests without a known action.
const Banner = "Lodge Shop Logger is running! Use POST requests to log items."

const (
	actionGetUsers = "getUsers"
	actionGetItems = "getItems"
	actionLogItems = "logItems"
	actionLogItem  = "logItem"
)

type userLister interface {
	ListUsers(ctx context.Context) ([]string, error)
}

type itemLister interface {
	ListItems(ctx context.Context) ([]domain.CatalogEntry, error)
}

type transactionService interface {
	SubmitTransaction(ctx context.Context, in ledger.SubmitInput) (*ledger.SubmitResult, error)
	SubmitLegacyItem(ctx context.Context, in ledger.LegacyInput) (*ledger.SubmitResult, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error)
}

// ShopHandler serves the action-dispatch endpoint used by the shop form.
// Every response is 200; the outcome is carried in the body.
type ShopHandler struct {
	users userLister
	items itemLister
	txs   transactionService
	log   *slog.Logger
}

// NewShopHandler creates a ShopHandler.
func NewShopHandler(users userLister, items itemLister, txs transactionService, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{users: users, items: items, txs: txs, log: logger.With("handler", "shop")}
}

// Get handles GET /?action=...
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.URL.Query().Get("action") {
	case actionGetUsers:
		users, err := h.users.ListUsers(ctx)
		if err != nil {
			h.log.ErrorContext(ctx, "list users", slog.String("error", err.Error()))
			users = []string{}
		}
		writeJSON(w, http.StatusOK, users)
	case actionGetItems:
		items, err := h.items.ListItems(ctx)
		if err != nil {
			h.log.ErrorContext(ctx, "list items", slog.String("error", err.Error()))
			items = []domain.CatalogEntry{}
		}
		writeJSON(w, http.StatusOK, items)
	default:
		writeText(w, http.StatusOK, Banner)
	}
}

// Post handles POST / with form fields. The action defaults to logItems.
func (h *ShopHandler) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	action := r.FormValue("action")
	if action == "" {
		action = actionLogItems
	}

	var err error
	switch action {
	case actionLogItems:
		_, err = h.txs.SubmitTransaction(ctx, submitInputFromForm(r))
	case actionLogItem:
		_, err = h.txs.SubmitLegacyItem(ctx, legacyInputFromForm(r))
	default:
		err = domain.ErrUnknownAction
	}

	if err != nil {
		h.logFailure(ctx, action, err)
		writeText(w, http.StatusOK, errorText(err))
		return
	}
	writeText(w, http.StatusOK, successText)
}

func (h *ShopHandler) logFailure(ctx context.Context, action string, err error) {
	level := slog.LevelWarn
	if isServerError(err) {
		level = slog.LevelError
	}
	h.log.Log(ctx, level, "request failed",
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
}

func submitInputFromForm(r *http.Request) ledger.SubmitInput {
	return ledger.SubmitInput{
		UserName:    r.FormValue("name"),
		LineItems:   r.FormValue("items"),
		TotalAmount: r.FormValue("totalAmount"),
		Timestamp:   r.FormValue("timestamp"),
	}
}

func legacyInputFromForm(r *http.Request) ledger.LegacyInput {
	return ledger.LegacyInput{
		UserName:  r.FormValue("name"),
		ItemName:  r.FormValue("item"),
		Timestamp: r.FormValue("timestamp"),
	}
}
