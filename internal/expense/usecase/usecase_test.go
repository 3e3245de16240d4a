package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/glowmart/admin-service/internal/expense"
	"github.com/glowmart/admin-service/internal/expense/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/pkg/logger"
)

type fakeRepo struct {
	expenses map[string]*model.Expense
	lastFind *dto.ExpenseFilters
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{expenses: make(map[string]*model.Expense)}
}

func (r *fakeRepo) Create(_ context.Context, e *model.Expense) error {
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*model.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f *dto.ExpenseFilters) ([]model.Expense, error) {
	cp := *f
	r.lastFind = &cp
	var out []model.Expense
	for _, e := range r.expenses {
		if e.UserID == f.UserID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, e *model.Expense) error {
	if _, ok := r.expenses[e.ID]; !ok {
		return errors.New("missing row")
	}
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, userID, id string) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeRepo) CreateCategory(_ context.Context, _ *model.ExpenseCategory) error { return nil }
func (r *fakeRepo) FindCategories(_ context.Context, _ string) ([]model.ExpenseCategory, error) {
	return nil, nil
}
func (r *fakeRepo) DeleteCategory(_ context.Context, _, _ string) error { return nil }

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
}

func TestCreateExpenseDerivesTotals(t *testing.T) {
	repo := newFakeRepo()
	uc := NewExpenseUseCase(repo, testLogger())

	got, err := uc.CreateExpense(context.Background(), &dto.SaveExpenseInput{
		UserID:        "u1",
		Amount:        200,
		TaxRate:       17,
		PaymentMethod: "Cash",
		ExpenseDate:   "2025-03-10",
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	if got.TaxAmount != 34 {
		t.Errorf("tax amount = %v, want 34", got.TaxAmount)
	}
	if got.TotalAmount != 234 {
		t.Errorf("total amount = %v, want 234", got.TotalAmount)
	}

	stored := repo.expenses[got.ID]
	if stored.TotalAmount != 234 {
		t.Errorf("stored total = %v, want 234", stored.TotalAmount)
	}
}

func TestCreateExpenseRejectsUnknownPayment(t *testing.T) {
	uc := NewExpenseUseCase(newFakeRepo(), testLogger())

	_, err := uc.CreateExpense(context.Background(), &dto.SaveExpenseInput{
		UserID:        "u1",
		Amount:        10,
		PaymentMethod: "Barter",
		ExpenseDate:   "2025-03-10",
	})
	if !errors.Is(err, expense.ErrInvalidPayment) {
		t.Fatalf("err = %v, want ErrInvalidPayment", err)
	}
}

func TestUpdateExpenseRecomputesTotals(t *testing.T) {
	repo := newFakeRepo()
	uc := NewExpenseUseCase(repo, testLogger())

	created, err := uc.CreateExpense(context.Background(), &dto.SaveExpenseInput{
		UserID:        "u1",
		Amount:        100,
		TaxRate:       10,
		PaymentMethod: "Cash",
		ExpenseDate:   "2025-03-10",
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	updated, err := uc.UpdateExpense(context.Background(), &dto.SaveExpenseInput{
		ID:            created.ID,
		UserID:        "u1",
		Amount:        50,
		TaxRate:       10,
		PaymentMethod: "Bank",
		ExpenseDate:   "2025-03-11",
	})
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}

	if updated.TaxAmount != 5 || updated.TotalAmount != 55 {
		t.Errorf("totals = %v/%v, want 5/55", updated.TaxAmount, updated.TotalAmount)
	}
	if updated.PaymentMethod != model.PaymentBank {
		t.Errorf("payment = %v, want Bank", updated.PaymentMethod)
	}
}

func TestUpdateExpenseScopedToOwner(t *testing.T) {
	repo := newFakeRepo()
	uc := NewExpenseUseCase(repo, testLogger())

	created, err := uc.CreateExpense(context.Background(), &dto.SaveExpenseInput{
		UserID:        "u1",
		Amount:        100,
		PaymentMethod: "Cash",
		ExpenseDate:   "2025-03-10",
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	_, err = uc.UpdateExpense(context.Background(), &dto.SaveExpenseInput{
		ID:            created.ID,
		UserID:        "someone-else",
		Amount:        1,
		PaymentMethod: "Cash",
		ExpenseDate:   "2025-03-10",
	})
	if !errors.Is(err, expense.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAnalyticsIgnoresPagination(t *testing.T) {
	repo := newFakeRepo()
	uc := NewExpenseUseCase(repo, testLogger())

	_, err := uc.Analytics(context.Background(), &dto.ExpenseFilters{
		UserID:   "u1",
		Page:     3,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}

	if repo.lastFind.Page != 0 || repo.lastFind.PageSize != 0 {
		t.Errorf("analytics query paginated: %+v", repo.lastFind)
	}
}
