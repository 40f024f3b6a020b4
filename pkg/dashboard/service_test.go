package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/internal/event_bus"
	"github.com/spendsight/spendsight/internal/utils"
	"github.com/spendsight/spendsight/pkg/backend"
	"github.com/spendsight/spendsight/pkg/category"
	"github.com/spendsight/spendsight/pkg/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now time.Time, wireExpenses []backend.Expense, wireCategories []backend.Category) *ServiceImpl {
	t.Helper()
	client := backend.NewClientStub()
	client.SetExpenses(wireExpenses)
	client.SetCategories(wireCategories)

	bus := event_bus.NewEventBus()
	expenses := expense.NewStore(client, bus, &utils.MockClock{FixedNow: now})
	categories := category.NewStore(client, category.NewStubFavoritesRepo(), bus, nil)
	require.NoError(t, expenses.Refresh(context.Background()))
	require.NoError(t, categories.Refresh(context.Background()))

	return NewService(expenses, categories, &utils.MockClock{FixedNow: now})
}

func TestServiceCharts(t *testing.T) {
	now := time.Date(2024, time.January, 5, 23, 0, 0, 0, time.UTC)
	service := newTestService(t, now,
		[]backend.Expense{
			{ID: "e1", Description: "Coffee", Amount: 3.50, Category: "Food", Date: "2024-01-05"},
			{ID: "e2", Description: "Bus", Amount: 2.00, Category: "Transport", Date: "2024-01-05"},
			{ID: "e3", Description: "Dinner", Amount: 18.00, Category: "Food", Date: "2024-01-04"},
		},
		[]backend.Category{{ID: "c1", Name: "Food"}, {ID: "c2", Name: "Transport"}},
	)

	charts := service.Charts(PeriodDay, nil)

	assert.Equal(t, PeriodDay, charts.Period)
	assert.True(t, charts.Total.Equal(decimal.NewFromFloat(5.50)))
	assert.Equal(t, []string{"2024-01-05"}, charts.OverTime.Labels)
	assert.Equal(t, []string{"Food", "Transport"}, charts.ByCategory.Labels)

	// Yesterday's dinner shows up only on the comparison side.
	require.Equal(t, []string{"Food", "Transport"}, charts.Comparison.Labels)
	assert.True(t, charts.Comparison.Previous[0].Equal(decimal.NewFromFloat(18.00)))
	assert.True(t, charts.Comparison.Previous[1].Equal(decimal.Zero))
}

func TestServiceCharts_CategorySelectionDoesNotNarrowComparison(t *testing.T) {
	now := time.Date(2024, time.January, 5, 23, 0, 0, 0, time.UTC)
	service := newTestService(t, now,
		[]backend.Expense{
			{ID: "e1", Description: "Coffee", Amount: 3.50, Category: "Food", Date: "2024-01-05"},
			{ID: "e2", Description: "Bus", Amount: 2.00, Category: "Transport", Date: "2024-01-05"},
			{ID: "e3", Description: "Taxi", Amount: 9.00, Category: "Transport", Date: "2024-01-04"},
		},
		[]backend.Category{{ID: "c1", Name: "Food"}, {ID: "c2", Name: "Transport"}},
	)

	charts := service.Charts(PeriodDay, []string{"Food"})

	assert.True(t, charts.Total.Equal(decimal.NewFromFloat(3.50)))
	assert.Equal(t, []string{"Food"}, charts.ByCategory.Labels)
	assert.Contains(t, charts.Comparison.Labels, "Transport", "comparison always covers the full previous period")
}

func TestServiceSummary(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	service := newTestService(t, now,
		[]backend.Expense{
			{ID: "e1", Description: "groceries", Amount: 40, Category: "Food", Date: "2024-03-03"},
			{ID: "e2", Description: "orphan", Amount: 99, Category: "Deleted", Date: "2024-03-14"},
			{ID: "e3", Description: "old", Amount: 120, Category: "Food", Date: "2024-02-28"},
		},
		[]backend.Category{{ID: "c1", Name: "Food"}},
	)

	summary := service.Summary()

	require.Len(t, summary.ByCategory, 1)
	assert.Equal(t, "Food", summary.ByCategory[0].Name)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(40)))
	require.Len(t, summary.Recent, 3)
	assert.Equal(t, "orphan", summary.Recent[0].Description)
}
