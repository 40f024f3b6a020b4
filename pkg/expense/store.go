package expense

import (
	"context"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spendsight/spendsight/internal/event_bus"
	"github.com/spendsight/spendsight/internal/utils"
	"github.com/spendsight/spendsight/pkg/backend"
)

// Store is the single in-memory owner of the expense list, kept in the order
// the backend returned it. All mutation flows through its operations;
// Snapshot hands out copies only.
type Store interface {
	Refresh(ctx context.Context) error
	Snapshot() []Expense

	Get(ctx context.Context, id string) (Expense, error)
	ListFiltered(ctx context.Context, filter *backend.ExpenseFilter) ([]Expense, error)
	Create(ctx context.Context, e Expense) (Expense, error)
	Update(ctx context.Context, id string, e Expense) (Expense, error)
	Delete(ctx context.Context, id string) error
}

type StoreImpl struct {
	client backend.Client
	clock  utils.Clock

	mu       sync.RWMutex
	expenses []Expense
}

// NewStore builds the store and subscribes it to category renames so local
// expense state follows a confirmed rename without a server round trip.
func NewStore(client backend.Client, bus *event_bus.EventBus, clock utils.Clock) *StoreImpl {
	s := &StoreImpl{client: client, clock: clock}
	bus.Subscribe(event_bus.CategoryRenamedEvent, func(e event_bus.Event) error {
		renamed, ok := e.Data.(event_bus.CategoryRenamed)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", e.Data, e.Type)
		}
		s.applyCategoryRename(renamed.OldName, renamed.NewName)
		return nil
	})
	return s
}

// Refresh re-fetches the full expense list and replaces local state. On
// failure the previous state is kept; background callers log the returned
// error instead of propagating it.
func (s *StoreImpl) Refresh(ctx context.Context) error {
	fetched, err := s.client.ListExpenses(ctx, nil)
	if err != nil {
		log.Warnf("Failed to refresh expenses, keeping previous state: %v", err)
		return err
	}

	expenses, err := fromWireList(fetched)
	if err != nil {
		log.Warnf("Failed to decode refreshed expenses, keeping previous state: %v", err)
		return err
	}

	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()
	return nil
}

func (s *StoreImpl) Snapshot() []Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Expense, len(s.expenses))
	copy(result, s.expenses)
	return result
}

// Get fetches a single expense from the backend; the detail view must not be
// served a stale local copy.
func (s *StoreImpl) Get(ctx context.Context, id string) (Expense, error) {
	fetched, err := s.client.GetExpense(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	return FromWire(fetched)
}

// ListFiltered passes a filter/sort request through to the backend
// without touching the store's own state.
func (s *StoreImpl) ListFiltered(ctx context.Context, filter *backend.ExpenseFilter) ([]Expense, error) {
	fetched, err := s.client.ListExpenses(ctx, filter)
	if err != nil {
		return nil, err
	}
	return fromWireList(fetched)
}

// Create persists a new expense and appends the server's version locally.
// A zero date defaults to now.
func (s *StoreImpl) Create(ctx context.Context, e Expense) (Expense, error) {
	if e.Date.IsZero() {
		e.Date = s.clock.Now()
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}

	created, err := s.client.CreateExpense(ctx, ToWire(e))
	if err != nil {
		return Expense{}, err
	}
	result, err := FromWire(created)
	if err != nil {
		return Expense{}, err
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, result)
	s.mu.Unlock()
	return result, nil
}

// Update persists the change and replaces the local entry on success.
func (s *StoreImpl) Update(ctx context.Context, id string, e Expense) (Expense, error) {
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}

	updated, err := s.client.UpdateExpense(ctx, id, ToWire(e))
	if err != nil {
		return Expense{}, err
	}
	result, err := FromWire(updated)
	if err != nil {
		return Expense{}, err
	}

	s.mu.Lock()
	for i, existing := range s.expenses {
		if existing.ID == id {
			s.expenses[i] = result
			break
		}
	}
	s.mu.Unlock()
	return result, nil
}

// Delete removes the expense from the backend and from local state.
func (s *StoreImpl) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteExpense(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, existing := range s.expenses {
		if existing.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *StoreImpl) applyCategoryRename(oldName, newName string) {
	if oldName == "" || oldName == newName {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if strings.EqualFold(s.expenses[i].Category, oldName) {
			s.expenses[i].Category = newName
		}
	}
}

func fromWireList(wire []backend.Expense) ([]Expense, error) {
	expenses := make([]Expense, 0, len(wire))
	for _, w := range wire {
		e, err := FromWire(w)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}
