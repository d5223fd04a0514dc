package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	usecase "manchy/internal/application/usecase"
	txdom "manchy/internal/domain/transaction"
)

// TransactionHandler serves the payment bookkeeping endpoints under
// /transactions (single fetch and status reconciliation).
type TransactionHandler struct {
	uc *usecase.TransactionUsecase
}

func NewTransactionHandler(uc *usecase.TransactionUsecase) http.Handler {
	return &TransactionHandler{uc: uc}
}

func (h *TransactionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/transactions/"):
		id := strings.TrimPrefix(r.URL.Path, "/transactions/")
		h.get(w, r, id)
	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/transactions/"):
		id := strings.TrimPrefix(r.URL.Path, "/transactions/")
		h.update(w, r, id)
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	}
}

// GET /transactions/{id}
func (h *TransactionHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	t, err := h.uc.GetByID(ctx, id)
	if err != nil {
		writeTxErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(t)
}

// PATCH /transactions/{id}
func (h *TransactionHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	var patch txdom.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	updated, err := h.uc.Update(ctx, id, patch)
	if err != nil {
		writeTxErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(updated)
}

// Error mapping
func writeTxErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, txdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, txdom.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, txdom.ErrInvalidCarID),
		errors.Is(err, txdom.ErrInvalidCustomer),
		errors.Is(err, txdom.ErrInvalidAmount),
		errors.Is(err, txdom.ErrInvalidReference),
		errors.Is(err, txdom.ErrInvalidStatus):
		code = http.StatusBadRequest
	}
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
