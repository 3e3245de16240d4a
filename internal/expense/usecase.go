package expense

import (
	"context"

	"github.com/glowmart/admin-service/internal/expense/dto"
	"github.com/glowmart/admin-service/internal/model"
)

type UseCase interface {
	CreateExpense(ctx context.Context, input *dto.SaveExpenseInput) (*model.Expense, error)
	GetExpense(ctx context.Context, userID, id string) (*model.Expense, error)
	ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, error)
	UpdateExpense(ctx context.Context, input *dto.SaveExpenseInput) (*model.Expense, error)
	DeleteExpense(ctx context.Context, userID, id string) error

	// Analytics runs the filter and aggregates the result set.
	Analytics(ctx context.Context, filters *dto.ExpenseFilters) (*AnalyticsView, error)

	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.ExpenseCategory, error)
	ListCategories(ctx context.Context, userID string) ([]model.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, userID, id string) error
}
