package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Expense is the wire representation used by the expense backend.
// Amount is a plain JSON number and Date an ISO date string (YYYY-MM-DD).
type Expense struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// Category is the wire representation of a backend category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SortField enumerates the expense list orderings the backend accepts.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
)

// ExpenseFilter is translated into query parameters of the expense list
// endpoint. All fields are optional and combine conjunctively; zero values
// add no parameter.
type ExpenseFilter struct {
	Description   string
	Category      string
	MinAmount     *float64
	MaxAmount     *float64
	StartDate     time.Time
	EndDate       time.Time
	SortBy        SortField
	SortDirection string // "asc" or "desc"
}

func (f *ExpenseFilter) query() url.Values {
	params := url.Values{}
	if f == nil {
		return params
	}
	if f.Description != "" {
		params.Set("description", f.Description)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.MinAmount != nil {
		params.Set("minAmount", fmt.Sprintf("%g", *f.MinAmount))
	}
	if f.MaxAmount != nil {
		params.Set("maxAmount", fmt.Sprintf("%g", *f.MaxAmount))
	}
	if !f.StartDate.IsZero() {
		params.Set("startDate", f.StartDate.Format("2006-01-02"))
	}
	if !f.EndDate.IsZero() {
		params.Set("endDate", f.EndDate.Format("2006-01-02"))
	}
	if f.SortBy != "" {
		params.Set("sortBy", string(f.SortBy))
	}
	if f.SortDirection != "" {
		params.Set("sortDirection", f.SortDirection)
	}
	return params
}

// Client talks to the external expense backend. One method per resource/verb
// pair of its REST contract. Every call surfaces a *RequestError on a non-2xx
// response or transport failure; nothing is retried.
type Client interface {
	ListExpenses(ctx context.Context, filter *ExpenseFilter) ([]Expense, error)
	GetExpense(ctx context.Context, id string) (Expense, error)
	CreateExpense(ctx context.Context, expense Expense) (Expense, error)
	UpdateExpense(ctx context.Context, id string, expense Expense) (Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
	UpdateCategory(ctx context.Context, id string, name string) (Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *ClientImpl {
	return &ClientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ClientImpl) ListExpenses(ctx context.Context, filter *ExpenseFilter) ([]Expense, error) {
	endpoint := c.baseURL + "/api/expenses"
	if params := filter.query(); len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	var expenses []Expense
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *ClientImpl) GetExpense(ctx context.Context, id string) (Expense, error) {
	var expense Expense
	err := c.do(ctx, http.MethodGet, c.expenseURL(id), nil, &expense)
	return expense, err
}

func (c *ClientImpl) CreateExpense(ctx context.Context, expense Expense) (Expense, error) {
	var created Expense
	err := c.do(ctx, http.MethodPost, c.baseURL+"/api/expenses", expense, &created)
	return created, err
}

func (c *ClientImpl) UpdateExpense(ctx context.Context, id string, expense Expense) (Expense, error) {
	var updated Expense
	err := c.do(ctx, http.MethodPut, c.expenseURL(id), expense, &updated)
	return updated, err
}

func (c *ClientImpl) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.expenseURL(id), nil, nil)
}

func (c *ClientImpl) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *ClientImpl) CreateCategory(ctx context.Context, name string) (Category, error) {
	var created Category
	body := map[string]string{"name": name}
	err := c.do(ctx, http.MethodPost, c.baseURL+"/api/categories", body, &created)
	return created, err
}

func (c *ClientImpl) UpdateCategory(ctx context.Context, id string, name string) (Category, error) {
	var updated Category
	body := map[string]string{"name": name}
	err := c.do(ctx, http.MethodPut, c.categoryURL(id), body, &updated)
	return updated, err
}

func (c *ClientImpl) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.categoryURL(id), nil, nil)
}

func (c *ClientImpl) expenseURL(id string) string {
	return c.baseURL + "/api/expenses/" + url.PathEscape(id)
}

func (c *ClientImpl) categoryURL(id string) string {
	return c.baseURL + "/api/categories/" + url.PathEscape(id)
}

// do executes a single request against the backend and decodes the response
// body into out when out is non-nil.
func (c *ClientImpl) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Backend request %s %s failed: %v", method, endpoint, err)
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := newRequestError(resp)
		log.Errorf("Backend request %s %s returned status %d: %s", method, endpoint, reqErr.StatusCode, reqErr.Message)
		return reqErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Errorf("Failed to decode backend response for %s %s: %v", method, endpoint, err)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
