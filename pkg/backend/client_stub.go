package backend

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// ClientStub is an in-memory Client used by store and service tests. It
// records the number of calls per method so tests can assert that guarded
// operations never reach the backend.
type ClientStub struct {
	mu         sync.Mutex
	nextID     int
	expenses   []Expense
	categories []Category

	Calls map[string]int

	ListExpensesErr   error
	CreateExpenseErr  error
	UpdateExpenseErr  error
	DeleteExpenseErr  error
	ListCategoriesErr error
	CreateCategoryErr error
	UpdateCategoryErr error
	DeleteCategoryErr error
}

func NewClientStub() *ClientStub {
	return &ClientStub{Calls: map[string]int{}}
}

// SetExpenses replaces the stub's expense fixture.
func (c *ClientStub) SetExpenses(expenses []Expense) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expenses = append([]Expense{}, expenses...)
}

// SetCategories replaces the stub's category fixture.
func (c *ClientStub) SetCategories(categories []Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = append([]Category{}, categories...)
}

func (c *ClientStub) record(method string) {
	c.Calls[method]++
}

func (c *ClientStub) ListExpenses(ctx context.Context, filter *ExpenseFilter) ([]Expense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("ListExpenses")
	if c.ListExpensesErr != nil {
		return nil, c.ListExpensesErr
	}
	result := make([]Expense, len(c.expenses))
	copy(result, c.expenses)
	return result, nil
}

func (c *ClientStub) GetExpense(ctx context.Context, id string) (Expense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("GetExpense")
	for _, e := range c.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return Expense{}, &RequestError{StatusCode: 404, Message: "expense not found"}
}

func (c *ClientStub) CreateExpense(ctx context.Context, expense Expense) (Expense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("CreateExpense")
	if c.CreateExpenseErr != nil {
		return Expense{}, c.CreateExpenseErr
	}
	c.nextID++
	expense.ID = "e" + strconv.Itoa(c.nextID)
	c.expenses = append(c.expenses, expense)
	return expense, nil
}

func (c *ClientStub) UpdateExpense(ctx context.Context, id string, expense Expense) (Expense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("UpdateExpense")
	if c.UpdateExpenseErr != nil {
		return Expense{}, c.UpdateExpenseErr
	}
	for i, e := range c.expenses {
		if e.ID == id {
			expense.ID = id
			c.expenses[i] = expense
			return expense, nil
		}
	}
	return Expense{}, &RequestError{StatusCode: 404, Message: "expense not found"}
}

func (c *ClientStub) DeleteExpense(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("DeleteExpense")
	if c.DeleteExpenseErr != nil {
		return c.DeleteExpenseErr
	}
	for i, e := range c.expenses {
		if e.ID == id {
			c.expenses = append(c.expenses[:i], c.expenses[i+1:]...)
			return nil
		}
	}
	return &RequestError{StatusCode: 404, Message: "expense not found"}
}

func (c *ClientStub) ListCategories(ctx context.Context) ([]Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("ListCategories")
	if c.ListCategoriesErr != nil {
		return nil, c.ListCategoriesErr
	}
	result := make([]Category, len(c.categories))
	copy(result, c.categories)
	return result, nil
}

func (c *ClientStub) CreateCategory(ctx context.Context, name string) (Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("CreateCategory")
	if c.CreateCategoryErr != nil {
		return Category{}, c.CreateCategoryErr
	}
	c.nextID++
	created := Category{ID: fmt.Sprintf("c%d", c.nextID), Name: name}
	c.categories = append(c.categories, created)
	return created, nil
}

func (c *ClientStub) UpdateCategory(ctx context.Context, id string, name string) (Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("UpdateCategory")
	if c.UpdateCategoryErr != nil {
		return Category{}, c.UpdateCategoryErr
	}
	for i, cat := range c.categories {
		if cat.ID == id {
			c.categories[i].Name = name
			return c.categories[i], nil
		}
	}
	return Category{}, &RequestError{StatusCode: 404, Message: "category not found"}
}

func (c *ClientStub) DeleteCategory(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("DeleteCategory")
	if c.DeleteCategoryErr != nil {
		return c.DeleteCategoryErr
	}
	for i, cat := range c.categories {
		if cat.ID == id {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			return nil
		}
	}
	return &RequestError{StatusCode: 404, Message: "category not found"}
}
