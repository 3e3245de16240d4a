package expense

import (
	"math"
	"testing"
	"time"

	"github.com/glowmart/admin-service/internal/model"
)

func expenseFixture(total float64, category string, date string) model.Expense {
	d, _ := time.Parse("2006-01-02", date)
	e := model.Expense{
		TotalAmount:   total,
		PaymentMethod: model.PaymentCash,
		ExpenseDate:   d,
	}
	if category != "" {
		e.CategoryName = &category
	}
	return e
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestBreakdownByCategory(t *testing.T) {
	expenses := []model.Expense{
		expenseFixture(100, "Food", "2025-01-01"),
		expenseFixture(50, "Food", "2025-01-02"),
		expenseFixture(25, "Travel", "2025-01-02"),
	}

	got := BreakdownByCategory(expenses)

	if len(got) != 2 {
		t.Fatalf("breakdown has %d buckets, want 2", len(got))
	}
	food := got["Food"]
	if food.Total != 150 || food.Count != 2 {
		t.Errorf("Food = %+v, want total 150 count 2", food)
	}
	travel := got["Travel"]
	if travel.Total != 25 || travel.Count != 1 {
		t.Errorf("Travel = %+v, want total 25 count 1", travel)
	}
}

func TestBreakdownByCategoryUncategorizedFallback(t *testing.T) {
	expenses := []model.Expense{
		expenseFixture(10, "", "2025-01-01"),
		expenseFixture(20, "", "2025-01-01"),
	}

	got := BreakdownByCategory(expenses)

	b, ok := got["Uncategorized"]
	if !ok {
		t.Fatalf("missing Uncategorized bucket: %v", got)
	}
	if b.Total != 30 || b.Count != 2 {
		t.Errorf("Uncategorized = %+v, want total 30 count 2", b)
	}
	if b.Color != defaultCategoryColor {
		t.Errorf("color = %q, want default", b.Color)
	}
}

func TestBreakdownByPayment(t *testing.T) {
	cash := expenseFixture(100, "Food", "2025-01-01")
	bank := expenseFixture(40, "Food", "2025-01-01")
	bank.PaymentMethod = model.PaymentBank

	got := BreakdownByPayment([]model.Expense{cash, bank, cash})

	if got[model.PaymentCash] != 200 {
		t.Errorf("Cash = %v, want 200", got[model.PaymentCash])
	}
	if got[model.PaymentBank] != 40 {
		t.Errorf("Bank = %v, want 40", got[model.PaymentBank])
	}
}

func TestComputeStats(t *testing.T) {
	expenses := []model.Expense{
		expenseFixture(100, "Food", "2025-01-01"),
		expenseFixture(50, "Food", "2025-01-02"),
		expenseFixture(25, "Travel", "2025-01-02"),
	}

	got := ComputeStats(expenses)

	if got.Total != 175 {
		t.Errorf("total = %v, want 175", got.Total)
	}
	if !almostEqual(got.Average, 58.33) {
		t.Errorf("average = %v, want 58.33", got.Average)
	}
	if got.Min != 25 {
		t.Errorf("min = %v, want 25", got.Min)
	}
	if got.Max != 100 {
		t.Errorf("max = %v, want 100", got.Max)
	}
	// Two distinct dates: 175 / 2.
	if !almostEqual(got.AveragePerDay, 87.5) {
		t.Errorf("average per day = %v, want 87.5", got.AveragePerDay)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil)
	if got.Total != 0 || got.Average != 0 || got.Min != 0 || got.Max != 0 || got.AveragePerDay != 0 {
		t.Fatalf("empty stats = %+v, want all zero", got)
	}
}
