package expense

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/internal/rest"
	"github.com/spendsight/spendsight/pkg/backend"
)

type ExpenseDTO struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List serves the store snapshot; when any filter or sort parameter is
// present the query is passed through to the backend instead.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var expenses []Expense
	if filter != nil {
		expenses, err = h.store.ListFiltered(r.Context(), filter)
		if err != nil {
			rest.WriteError(w, err)
			return
		}
	} else {
		expenses = h.store.Snapshot()
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpensesToDTO(expenses)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	found, err := h.store.Get(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(found)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e, err := DTOToExpense(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.store.Create(r.Context(), e)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e, err := DTOToExpense(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.store.Update(r.Context(), id, e)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.Delete(r.Context(), id); err != nil {
		rest.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.store.Refresh(r.Context()); err != nil {
		rest.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpensesToDTO(h.store.Snapshot())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch err {
	case ErrEmptyDescription, ErrInvalidAmount, ErrEmptyCategory:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		rest.WriteError(w, err)
	}
}

// filterFromQuery builds the backend filter from the request's query string.
// It returns nil when no recognized parameter is present.
func filterFromQuery(r *http.Request) (*backend.ExpenseFilter, error) {
	q := r.URL.Query()
	filter := &backend.ExpenseFilter{
		Description:   q.Get("description"),
		Category:      q.Get("category"),
		SortBy:        backend.SortField(q.Get("sortBy")),
		SortDirection: q.Get("sortDirection"),
	}
	present := filter.Description != "" || filter.Category != "" ||
		filter.SortBy != "" || filter.SortDirection != ""

	if raw := q.Get("minAmount"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		filter.MinAmount = &value
		present = true
	}
	if raw := q.Get("maxAmount"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		filter.MaxAmount = &value
		present = true
	}
	if raw := q.Get("startDate"); raw != "" {
		value, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
		filter.StartDate = value
		present = true
	}
	if raw := q.Get("endDate"); raw != "" {
		value, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
		filter.EndDate = value
		present = true
	}

	if !present {
		return nil, nil
	}
	return filter, nil
}

func DTOToExpense(dto ExpenseDTO) (Expense, error) {
	var date time.Time
	if dto.Date != "" {
		parsed, err := parseWireDate(dto.Date)
		if err != nil {
			return Expense{}, err
		}
		date = parsed
	}
	return Expense{
		ID:          dto.ID,
		Description: dto.Description,
		Amount:      decimal.NewFromFloat(dto.Amount),
		Category:    dto.Category,
		Date:        date,
	}, nil
}

func ExpenseToDTO(e Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Category:    e.Category,
		Date:        e.Date.Format(wireDateFormat),
	}
}

func ExpensesToDTO(expenses []Expense) []ExpenseDTO {
	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, ExpenseToDTO(e))
	}
	return dtos
}
