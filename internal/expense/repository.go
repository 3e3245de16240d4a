package expense

import (
	"context"
	"errors"

	"github.com/glowmart/admin-service/internal/expense/dto"
	"github.com/glowmart/admin-service/internal/model"
)

var (
	ErrNotFound       = errors.New("expense not found")
	ErrInvalidPayment = errors.New("unknown payment method")
)

type Repository interface {
	Create(ctx context.Context, expense *model.Expense) error
	FindByID(ctx context.Context, id string) (*model.Expense, error)
	// FindAll joins the category name and color needed by the analytics view.
	FindAll(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, userID, id string) error

	CreateCategory(ctx context.Context, category *model.ExpenseCategory) error
	FindCategories(ctx context.Context, userID string) ([]model.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, userID, id string) error
}
