package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/pkg/expense"
)

// Period is the rolling window the dashboard buckets expenses into.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(value string) (Period, error) {
	switch Period(value) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(value), nil
	}
	return "", fmt.Errorf("unknown period %q", value)
}

// TimeSeries holds per-calendar-date totals with labels sorted ascending,
// ready for a line or area chart.
type TimeSeries struct {
	Labels []string
	Totals []decimal.Decimal
}

// CategorySeries holds per-category totals in first-seen order, ready for a
// doughnut or bar chart.
type CategorySeries struct {
	Labels []string
	Totals []decimal.Decimal
}

// ComparisonSeries pairs current and previous period totals over the union of
// category labels; a category absent from one side contributes exactly zero.
type ComparisonSeries struct {
	Labels   []string
	Current  []decimal.Decimal
	Previous []decimal.Decimal
}

// ChartData is everything the dashboard view renders for one period and
// category selection.
type ChartData struct {
	Period     Period
	Total      decimal.Decimal
	OverTime   TimeSeries
	ByCategory CategorySeries
	Comparison ComparisonSeries
}

type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// MonthlySummary is the home view: current-month spending per live category,
// the grand total, and the five most recent expenses overall.
type MonthlySummary struct {
	ByCategory []CategoryTotal
	Total      decimal.Decimal
	Recent     []expense.Expense
}
