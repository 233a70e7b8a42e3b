package rest

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
	"github.com/heartmarshall/lodgeshop-backend/internal/service/ledger"
)

const maxBodyBytes = 1 << 20

type submitRequest struct {
	UserName    string          `json:"userName"`
	LineItems   json.RawMessage `json:"lineItems"`
	TotalAmount json.RawMessage `json:"totalAmount"`
	Timestamp   string          `json:"timestamp"`
}

type legacyRequest struct {
	UserName  string `json:"userName"`
	ItemName  string `json:"itemName"`
	Timestamp string `json:"timestamp"`
}

type transactionResponse struct {
	ID          string            `json:"id"`
	UserName    string            `json:"userName"`
	LineItems   []domain.LineItem `json:"lineItems"`
	TotalAmount json.Number       `json:"totalAmount"`
	Timestamp   string            `json:"timestamp"`
	ItemSummary string            `json:"itemSummary"`
	CreatedAt   *time.Time        `json:"createdAt,omitempty"`
}

type submitResponse struct {
	Transaction  transactionResponse  `json:"transaction"`
	StockChanges []domain.StockChange `json:"stockChanges"`
	StockError   string               `json:"stockError,omitempty"`
}

// ListUsers handles GET /api/users.
func (h *ShopHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ListItems handles GET /api/items.
func (h *ShopHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListItems(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListTransactions handles GET /api/transactions?limit=&offset=.
func (h *ShopHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, ok := queryInt(q.Get("limit"))
	if !ok {
		writeText(w, http.StatusBadRequest, "Error: limit must be an integer")
		return
	}
	offset, ok := queryInt(q.Get("offset"))
	if !ok {
		writeText(w, http.StatusBadRequest, "Error: offset must be an integer")
		return
	}

	txs, err := h.txs.ListTransactions(r.Context(), limit, offset)
	if err != nil {
		h.apiError(w, r, err)
		return
	}

	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateTransaction handles POST /api/transactions with a JSON or form body.
func (h *ShopHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in ledger.SubmitInput
	if isJSON(r) {
		var req submitRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeText(w, http.StatusBadRequest, "Error: invalid request body")
			return
		}
		in = ledger.SubmitInput{
			UserName:    req.UserName,
			LineItems:   rawText(req.LineItems),
			TotalAmount: rawText(req.TotalAmount),
			Timestamp:   req.Timestamp,
		}
	} else {
		in = submitInputFromForm(r)
	}

	result, err := h.txs.SubmitTransaction(r.Context(), in)
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmitResponse(result))
}

// CreateLegacyTransaction handles POST /api/transactions/legacy.
func (h *ShopHandler) CreateLegacyTransaction(w http.ResponseWriter, r *http.Request) {
	var in ledger.LegacyInput
	if isJSON(r) {
		var req legacyRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeText(w, http.StatusBadRequest, "Error: invalid request body")
			return
		}
		in = ledger.LegacyInput{UserName: req.UserName, ItemName: req.ItemName, Timestamp: req.Timestamp}
	} else {
		in = legacyInputFromForm(r)
	}

	result, err := h.txs.SubmitLegacyItem(r.Context(), in)
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmitResponse(result))
}

func (h *ShopHandler) apiError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	}
	writeText(w, status, errorText(err))
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// rawText accepts a field sent either as a JSON string or as a bare JSON
// value and returns the text the service layer expects.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// queryInt parses an optional integer query parameter. Empty means zero.
func queryInt(v string) (int, bool) {
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func toTransactionResponse(tx domain.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID.String(),
		UserName:    tx.UserName,
		LineItems:   tx.LineItems,
		TotalAmount: json.Number(tx.TotalAmount.String()),
		Timestamp:   tx.Timestamp,
		ItemSummary: tx.ItemSummary,
	}
	if !tx.CreatedAt.IsZero() {
		createdAt := tx.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func toSubmitResponse(result *ledger.SubmitResult) submitResponse {
	resp := submitResponse{
		Transaction:  toTransactionResponse(result.Transaction),
		StockChanges: result.StockChanges,
	}
	if resp.StockChanges == nil {
		resp.StockChanges = []domain.StockChange{}
	}
	if result.StockErr != nil {
		resp.StockError = result.StockErr.Error()
	}
	return resp
}
