package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/pkg/expense"
)

const dateLabelFormat = "2006-01-02"

// StartOfPeriod truncates the reference instant to the period boundary it
// falls in: midnight of the same day, of the Monday on or before it, of the
// first of its month, or of January 1st of its year. Reapplying it to its own
// output is a no-op.
func StartOfPeriod(reference time.Time, period Period) time.Time {
	year, month, day := reference.Date()
	loc := reference.Location()
	switch period {
	case PeriodWeek:
		weekday := int(reference.Weekday())
		if weekday == 0 { // Sunday belongs to the week that started 6 days earlier
			weekday = 7
		}
		return time.Date(year, month, day-(weekday-1), 0, 0, 0, 0, loc)
	case PeriodMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	default: // PeriodDay
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	}
}

// FilterByPeriod keeps expenses dated on or after the start of the current
// period; the upper bound is open-ended.
func FilterByPeriod(expenses []expense.Expense, period Period, now time.Time) []expense.Expense {
	start := StartOfPeriod(now, period)
	result := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.Date.Before(start) {
			result = append(result, e)
		}
	}
	return result
}

// FilterByCategories keeps expenses whose category is in the selection. An
// empty selection means no filtering at all.
func FilterByCategories(expenses []expense.Expense, selected []string) []expense.Expense {
	if len(selected) == 0 {
		result := make([]expense.Expense, len(expenses))
		copy(result, expenses)
		return result
	}
	result := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		for _, name := range selected {
			if strings.EqualFold(e.Category, name) {
				result = append(result, e)
				break
			}
		}
	}
	return result
}

// CategoryTotals groups expenses by category name, summing amounts. Labels
// keep first-seen order and are not sorted.
func CategoryTotals(expenses []expense.Expense) CategorySeries {
	series := CategorySeries{Labels: []string{}, Totals: []decimal.Decimal{}}
	index := make(map[string]int)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(series.Labels)
			index[e.Category] = i
			series.Labels = append(series.Labels, e.Category)
			series.Totals = append(series.Totals, decimal.Zero)
		}
		series.Totals[i] = series.Totals[i].Add(e.Amount)
	}
	return series
}

// TimeSeriesTotals groups expenses by calendar date (the time component is
// ignored), summing amounts, with labels sorted ascending.
func TimeSeriesTotals(expenses []expense.Expense) TimeSeries {
	byDate := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		label := e.Date.Format(dateLabelFormat)
		byDate[label] = byDate[label].Add(e.Amount)
	}

	labels := make([]string, 0, len(byDate))
	for label := range byDate {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	totals := make([]decimal.Decimal, 0, len(labels))
	for _, label := range labels {
		totals = append(totals, byDate[label])
	}
	return TimeSeries{Labels: labels, Totals: totals}
}

// PreviousPeriodExpenses returns the expenses of the period immediately
// before the current one: one unit is subtracted from now, truncated to its
// period start, and the half-open range [previous start, current start) is
// kept.
func PreviousPeriodExpenses(expenses []expense.Expense, period Period, now time.Time) []expense.Expense {
	var reference time.Time
	switch period {
	case PeriodWeek:
		reference = now.AddDate(0, 0, -7)
	case PeriodMonth:
		reference = now.AddDate(0, -1, 0)
	case PeriodYear:
		reference = now.AddDate(-1, 0, 0)
	default: // PeriodDay
		reference = now.AddDate(0, 0, -1)
	}
	previousStart := StartOfPeriod(reference, period)
	currentStart := StartOfPeriod(now, period)

	result := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.Date.Before(previousStart) && e.Date.Before(currentStart) {
			result = append(result, e)
		}
	}
	return result
}

// Comparison builds the radar series over the union of category labels from
// both periods. A label missing on either side gets an exact zero, never a
// hole.
func Comparison(current, previous []expense.Expense) ComparisonSeries {
	currentTotals := CategoryTotals(current)
	previousTotals := CategoryTotals(previous)

	labels := make([]string, 0, len(currentTotals.Labels)+len(previousTotals.Labels))
	seen := make(map[string]struct{})
	for _, label := range currentTotals.Labels {
		labels = append(labels, label)
		seen[label] = struct{}{}
	}
	for _, label := range previousTotals.Labels {
		if _, ok := seen[label]; !ok {
			labels = append(labels, label)
		}
	}

	series := ComparisonSeries{
		Labels:   labels,
		Current:  make([]decimal.Decimal, len(labels)),
		Previous: make([]decimal.Decimal, len(labels)),
	}
	for i, label := range labels {
		series.Current[i] = totalFor(currentTotals, label)
		series.Previous[i] = totalFor(previousTotals, label)
	}
	return series
}

func totalFor(series CategorySeries, label string) decimal.Decimal {
	for i, l := range series.Labels {
		if l == label {
			return series.Totals[i]
		}
	}
	return decimal.Zero
}

// Summarize builds the home view summary: expenses of the current calendar
// month whose category still exists are summed per category and in total;
// expenses pointing at a vanished category are silently excluded. Recent
// always holds the five most recent expenses overall, date descending, ties
// keeping their original order.
func Summarize(expenses []expense.Expense, validCategories []string, now time.Time) MonthlySummary {
	valid := make(map[string]struct{}, len(validCategories))
	for _, name := range validCategories {
		valid[strings.ToLower(name)] = struct{}{}
	}

	summary := MonthlySummary{ByCategory: []CategoryTotal{}, Total: decimal.Zero}
	index := make(map[string]int)
	year, month, _ := now.Date()
	for _, e := range expenses {
		eYear, eMonth, _ := e.Date.Date()
		if eYear != year || eMonth != month {
			continue
		}
		if _, ok := valid[strings.ToLower(e.Category)]; !ok {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(summary.ByCategory)
			index[e.Category] = i
			summary.ByCategory = append(summary.ByCategory, CategoryTotal{Name: e.Category, Total: decimal.Zero})
		}
		summary.ByCategory[i].Total = summary.ByCategory[i].Total.Add(e.Amount)
		summary.Total = summary.Total.Add(e.Amount)
	}

	recent := make([]expense.Expense, len(expenses))
	copy(recent, expenses)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	summary.Recent = recent

	return summary
}
