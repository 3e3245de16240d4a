package usecase

import (
	"context"
	"math"
	"time"

	"github.com/glowmart/admin-service/internal/expense"
	"github.com/glowmart/admin-service/internal/expense/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type expenseUseCase struct {
	repo   expense.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewExpenseUseCase(repo expense.Repository, log logger.ZapLogger) expense.UseCase {
	return &expenseUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *expenseUseCase) CreateExpense(ctx context.Context, input *dto.SaveExpenseInput) (*model.Expense, error) {
	e, err := uc.fromInput(input)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	e.ID = uuid.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	// Re-read so the response carries the joined category name and color.
	return uc.GetExpense(ctx, input.UserID, e.ID)
}

func (uc *expenseUseCase) GetExpense(ctx context.Context, userID, id string) (*model.Expense, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.UserID != userID {
		return nil, expense.ErrNotFound
	}
	return e, nil
}

func (uc *expenseUseCase) ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *expenseUseCase) UpdateExpense(ctx context.Context, input *dto.SaveExpenseInput) (*model.Expense, error) {
	existing, err := uc.GetExpense(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	e, err := uc.fromInput(input)
	if err != nil {
		return nil, err
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return uc.GetExpense(ctx, input.UserID, e.ID)
}

func (uc *expenseUseCase) DeleteExpense(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, userID, id)
}

func (uc *expenseUseCase) Analytics(ctx context.Context, filters *dto.ExpenseFilters) (*expense.AnalyticsView, error) {
	// Analytics ignores pagination: the figures always cover the whole filter.
	f := *filters
	f.Page = 0
	f.PageSize = 0

	expenses, err := uc.repo.FindAll(ctx, &f)
	if err != nil {
		return nil, err
	}

	return &expense.AnalyticsView{
		Stats:      expense.ComputeStats(expenses),
		ByCategory: expense.BreakdownByCategory(expenses),
		ByPayment:  expense.BreakdownByPayment(expenses),
	}, nil
}

func (uc *expenseUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.ExpenseCategory, error) {
	now := uc.now()
	c := &model.ExpenseCategory{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: input.UserID,
		Name:   input.Name,
		Color:  input.Color,
	}
	if c.Color == "" {
		c.Color = "#9CA3AF"
	}
	if err := uc.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *expenseUseCase) ListCategories(ctx context.Context, userID string) ([]model.ExpenseCategory, error) {
	return uc.repo.FindCategories(ctx, userID)
}

func (uc *expenseUseCase) DeleteCategory(ctx context.Context, userID, id string) error {
	return uc.repo.DeleteCategory(ctx, userID, id)
}

// fromInput builds an expense row from the submitted fields. The tax and
// total amounts are derived here, at write time, and stored as columns so
// that reads and analytics never have to re-derive them.
func (uc *expenseUseCase) fromInput(input *dto.SaveExpenseInput) (*model.Expense, error) {
	method := model.PaymentMethod(input.PaymentMethod)
	if !method.Valid() {
		return nil, expense.ErrInvalidPayment
	}

	date, err := time.Parse(dateLayout, input.ExpenseDate)
	if err != nil {
		return nil, err
	}

	taxAmount := math.Round(input.Amount*input.TaxRate) / 100

	return &model.Expense{
		UserID:        input.UserID,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Amount:        input.Amount,
		TaxRate:       input.TaxRate,
		TaxAmount:     taxAmount,
		TotalAmount:   input.Amount + taxAmount,
		PaymentMethod: method,
		ExpenseDate:   date,
		ExpenseTime:   input.ExpenseTime,
		Description:   input.Description,
	}, nil
}
