package search

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/pkg/expense"
)

type Handler struct {
	store expense.Store
}

func NewHandler(store expense.Store) *Handler {
	return &Handler{store: store}
}

// Find serves GET /api/search?text=&minAmount=&maxAmount= over the current
// expense snapshot. Nothing about the search is persisted.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query()

	var min, max *decimal.Decimal
	if raw := q.Get("minAmount"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			http.Error(w, "invalid minAmount", http.StatusBadRequest)
			return
		}
		min = &value
	}
	if raw := q.Get("maxAmount"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			http.Error(w, "invalid maxAmount", http.StatusBadRequest)
			return
		}
		max = &value
	}

	results := Search(h.store.Snapshot(), q.Get("text"), min, max)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expense.ExpensesToDTO(results)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
