package expense

import "github.com/glowmart/admin-service/internal/model"

const (
	uncategorized        = "Uncategorized"
	defaultCategoryColor = "#9CA3AF"
)

// CategoryBreakdown is a sum/count bucket for one expense category.
type CategoryBreakdown struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
	Color string  `json:"color"`
}

type Stats struct {
	Total         float64 `json:"total"`
	Count         int     `json:"count"`
	Average       float64 `json:"average"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	AveragePerDay float64 `json:"average_per_day"`
}

// AnalyticsView bundles the aggregate figures for one filtered collection.
type AnalyticsView struct {
	Stats      Stats                           `json:"stats"`
	ByCategory map[string]CategoryBreakdown    `json:"by_category"`
	ByPayment  map[model.PaymentMethod]float64 `json:"by_payment"`
}

// BreakdownByCategory groups the collection by category display name.
// Expenses without a linked category fall into the Uncategorized bucket.
func BreakdownByCategory(expenses []model.Expense) map[string]CategoryBreakdown {
	out := make(map[string]CategoryBreakdown)
	for _, e := range expenses {
		name := uncategorized
		if e.CategoryName != nil && *e.CategoryName != "" {
			name = *e.CategoryName
		}
		color := defaultCategoryColor
		if e.CategoryColor != nil && *e.CategoryColor != "" {
			color = *e.CategoryColor
		}

		b := out[name]
		b.Total += e.TotalAmount
		b.Count++
		b.Color = color
		out[name] = b
	}
	return out
}

// BreakdownByPayment sums total_amount per payment method.
func BreakdownByPayment(expenses []model.Expense) map[model.PaymentMethod]float64 {
	out := make(map[model.PaymentMethod]float64)
	for _, e := range expenses {
		out[e.PaymentMethod] += e.TotalAmount
	}
	return out
}

// ComputeStats derives the aggregate figures for the current collection.
// Everything is recomputed from scratch; the inputs are small enough that
// incremental maintenance would buy nothing.
func ComputeStats(expenses []model.Expense) Stats {
	if len(expenses) == 0 {
		return Stats{}
	}

	s := Stats{Count: len(expenses), Min: expenses[0].TotalAmount, Max: expenses[0].TotalAmount}
	days := make(map[string]struct{})

	for _, e := range expenses {
		s.Total += e.TotalAmount
		if e.TotalAmount < s.Min {
			s.Min = e.TotalAmount
		}
		if e.TotalAmount > s.Max {
			s.Max = e.TotalAmount
		}
		days[e.ExpenseDate.Format("2006-01-02")] = struct{}{}
	}

	s.Average = s.Total / float64(s.Count)

	dayCount := len(days)
	if dayCount < 1 {
		dayCount = 1
	}
	s.AveragePerDay = s.Total / float64(dayCount)

	return s
}
