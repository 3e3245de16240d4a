package category

import (
	"context"
	"errors"

	"github.com/glowmart/admin-service/internal/category/dto"
	"github.com/glowmart/admin-service/internal/model"
)

var (
	ErrNotFound        = errors.New("category not found")
	ErrReorderInFlight = errors.New("a reorder is already in progress for this list")
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	UpdateSortOrder(ctx context.Context, userID, id string, sortOrder int) error
	Delete(ctx context.Context, userID, id string) error

	CreateMenu(ctx context.Context, menu *model.Menu) error
	FindMenus(ctx context.Context, userID string) ([]model.Menu, error)
	DeleteMenu(ctx context.Context, userID, id string) error
}
