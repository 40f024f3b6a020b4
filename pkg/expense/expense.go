package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/pkg/backend"
)

// Expense is a single recorded expense. ID is server-assigned and empty until
// the expense has been persisted. Category references a category by name; the
// reference is not enforced, deleting a category leaves its expenses as-is.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

var (
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyCategory    = errors.New("category must not be empty")
)

const wireDateFormat = "2006-01-02"

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// FromWire converts the backend wire shape into the domain type.
func FromWire(w backend.Expense) (Expense, error) {
	date, err := parseWireDate(w.Date)
	if err != nil {
		return Expense{}, fmt.Errorf("expense %s has invalid date %q: %w", w.ID, w.Date, err)
	}
	return Expense{
		ID:          w.ID,
		Description: w.Description,
		Amount:      decimal.NewFromFloat(w.Amount),
		Category:    w.Category,
		Date:        date,
	}, nil
}

// ToWire converts the domain type into the backend wire shape.
func ToWire(e Expense) backend.Expense {
	return backend.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Category:    e.Category,
		Date:        e.Date.Format(wireDateFormat),
	}
}

// parseWireDate accepts the backend's ISO date or a full RFC 3339 timestamp.
func parseWireDate(value string) (time.Time, error) {
	if t, err := time.Parse(wireDateFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
