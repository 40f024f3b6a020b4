package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendsight/spendsight/pkg/expense"
)

type SeriesDTO struct {
	Labels []string  `json:"labels"`
	Totals []float64 `json:"totals"`
}

type ComparisonDTO struct {
	Labels   []string  `json:"labels"`
	Current  []float64 `json:"current"`
	Previous []float64 `json:"previous"`
}

type ChartsDTO struct {
	Period     string        `json:"period"`
	Total      float64       `json:"total"`
	OverTime   SeriesDTO     `json:"overTime"`
	ByCategory SeriesDTO     `json:"byCategory"`
	Comparison ComparisonDTO `json:"comparison"`
}

type CategoryTotalDTO struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type SummaryDTO struct {
	ByCategory []CategoryTotalDTO   `json:"byCategory"`
	Total      float64              `json:"total"`
	Recent     []expense.ExpenseDTO `json:"recentExpenses"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetCharts serves GET /api/dashboard/charts?period=&categories=a,b.
// Period defaults to month, matching the dashboard's initial view.
func (h *Handler) GetCharts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	period := PeriodMonth
	if raw := r.URL.Query().Get("period"); raw != "" {
		parsed, err := ParsePeriod(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		period = parsed
	}

	var selected []string
	for _, raw := range r.URL.Query()["categories"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				selected = append(selected, name)
			}
		}
	}

	charts := h.service.Charts(period, selected)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(chartsToDTO(charts)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetSummary serves GET /api/dashboard/summary for the home view.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary := h.service.Summary()
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func chartsToDTO(charts ChartData) ChartsDTO {
	return ChartsDTO{
		Period: string(charts.Period),
		Total:  charts.Total.InexactFloat64(),
		OverTime: SeriesDTO{
			Labels: charts.OverTime.Labels,
			Totals: toFloats(charts.OverTime.Totals),
		},
		ByCategory: SeriesDTO{
			Labels: charts.ByCategory.Labels,
			Totals: toFloats(charts.ByCategory.Totals),
		},
		Comparison: ComparisonDTO{
			Labels:   charts.Comparison.Labels,
			Current:  toFloats(charts.Comparison.Current),
			Previous: toFloats(charts.Comparison.Previous),
		},
	}
}

func summaryToDTO(summary MonthlySummary) SummaryDTO {
	byCategory := make([]CategoryTotalDTO, 0, len(summary.ByCategory))
	for _, ct := range summary.ByCategory {
		byCategory = append(byCategory, CategoryTotalDTO{Name: ct.Name, Total: ct.Total.InexactFloat64()})
	}
	return SummaryDTO{
		ByCategory: byCategory,
		Total:      summary.Total.InexactFloat64(),
		Recent:     expense.ExpensesToDTO(summary.Recent),
	}
}

func toFloats(totals []decimal.Decimal) []float64 {
	result := make([]float64, 0, len(totals))
	for _, total := range totals {
		result = append(result, total.InexactFloat64())
	}
	return result
}
