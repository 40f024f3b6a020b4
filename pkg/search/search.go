package search

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/pkg/expense"
)

// Search keeps expenses whose description contains text (case-insensitive;
// empty text matches everything) and whose amount lies within the inclusive
// [min, max] range. A nil bound is unbounded on that side. The input is never
// mutated; the result is a fresh slice.
func Search(expenses []expense.Expense, text string, min, max *decimal.Decimal) []expense.Expense {
	needle := strings.ToLower(text)
	result := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		if needle != "" && !strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		if min != nil && e.Amount.LessThan(*min) {
			continue
		}
		if max != nil && e.Amount.GreaterThan(*max) {
			continue
		}
		result = append(result, e)
	}
	return result
}
