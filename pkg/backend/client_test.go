package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientImpl_ListExpenses(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/expenses", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Expense{
			{ID: "e1", Description: "Coffee", Amount: 3.5, Category: "Food", Date: "2024-01-05"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	min := 1.0
	max := 10.0
	expenses, err := client.ListExpenses(context.Background(), &ExpenseFilter{
		Description:   "cof",
		Category:      "Food",
		MinAmount:     &min,
		MaxAmount:     &max,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SortBy:        SortByAmount,
		SortDirection: "desc",
	})

	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Coffee", expenses[0].Description)
	assert.Equal(t, []string{"cof"}, gotQuery["description"])
	assert.Equal(t, []string{"Food"}, gotQuery["category"])
	assert.Equal(t, []string{"1"}, gotQuery["minAmount"])
	assert.Equal(t, []string{"10"}, gotQuery["maxAmount"])
	assert.Equal(t, []string{"2024-01-01"}, gotQuery["startDate"])
	assert.Equal(t, []string{"amount"}, gotQuery["sortBy"])
	assert.Equal(t, []string{"desc"}, gotQuery["sortDirection"])
	_, hasEndDate := gotQuery["endDate"]
	assert.False(t, hasEndDate, "absent filter fields must not produce parameters")
}

func TestClientImpl_ListExpenses_NoFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	expenses, err := client.ListExpenses(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestClientImpl_CreateExpense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/expenses", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received Expense
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Empty(t, received.ID)

		received.ID = "e42"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	created, err := client.CreateExpense(context.Background(), Expense{
		Description: "Bus",
		Amount:      2,
		Category:    "Transport",
		Date:        "2024-01-05",
	})

	require.NoError(t, err)
	assert.Equal(t, "e42", created.ID)
	assert.Equal(t, "Bus", created.Description)
}

func TestClientImpl_UpdateCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/categories/c1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Groceries", body["name"])

		_ = json.NewEncoder(w).Encode(Category{ID: "c1", Name: body["name"]})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	updated, err := client.UpdateCategory(context.Background(), "c1", "Groceries")

	require.NoError(t, err)
	assert.Equal(t, Category{ID: "c1", Name: "Groceries"}, updated)
}

func TestClientImpl_DeleteExpense_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/expenses/e1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	assert.NoError(t, client.DeleteExpense(context.Background(), "e1"))
}

func TestClientImpl_NonOKStatusBecomesRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Category with name 'Food' already exists."})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.CreateCategory(context.Background(), "Food")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.StatusCode)
	assert.Equal(t, "Category with name 'Food' already exists.", reqErr.Message)
}

func TestClientImpl_PlainTextErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expense not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.GetExpense(context.Background(), "missing")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "expense not found", reqErr.Message)
}

func TestClientImpl_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, time.Second)
	_, err := client.ListCategories(context.Background())

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 0, reqErr.StatusCode)
	assert.NotEmpty(t, reqErr.Message)
}
