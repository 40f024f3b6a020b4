package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/internal/utils"
	"github.com/spendsight/spendsight/pkg/category"
	"github.com/spendsight/spendsight/pkg/expense"
)

// Service derives the dashboard and home views from the current store
// snapshots. It holds no state of its own.
type Service interface {
	Charts(period Period, selectedCategories []string) ChartData
	Summary() MonthlySummary
}

type ServiceImpl struct {
	expenses   expense.Store
	categories category.Store
	clock      utils.Clock
}

func NewService(expenses expense.Store, categories category.Store, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		expenses:   expenses,
		categories: categories,
		clock:      clock,
	}
}

// Charts buckets the expense snapshot for the chart views. The comparison
// covers the full previous period, unfiltered by category.
func (s *ServiceImpl) Charts(period Period, selectedCategories []string) ChartData {
	snapshot := s.expenses.Snapshot()
	now := s.clock.Now()

	current := FilterByCategories(FilterByPeriod(snapshot, period, now), selectedCategories)
	previous := PreviousPeriodExpenses(snapshot, period, now)

	total := decimal.Zero
	for _, e := range current {
		total = total.Add(e.Amount)
	}

	return ChartData{
		Period:     period,
		Total:      total,
		OverTime:   TimeSeriesTotals(current),
		ByCategory: CategoryTotals(current),
		Comparison: Comparison(current, previous),
	}
}

// Summary builds the current-month home view over live categories only.
func (s *ServiceImpl) Summary() MonthlySummary {
	return Summarize(s.expenses.Snapshot(), s.categories.Names(), s.clock.Now())
}
