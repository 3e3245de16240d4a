package category

import (
	"context"

	"github.com/glowmart/admin-service/internal/category/dto"
	"github.com/glowmart/admin-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, userID, id string) error

	// Reorder moves the category at index From to index To within the ordered
	// list scoped by user (and menu, when set) and persists every row's new
	// sort_order. On persistence failure the list is reloaded from the store
	// and returned alongside the error.
	Reorder(ctx context.Context, input *dto.ReorderInput) ([]model.Category, error)

	CreateMenu(ctx context.Context, input *dto.CreateMenuInput) (*model.Menu, error)
	ListMenus(ctx context.Context, userID string) ([]model.Menu, error)
	DeleteMenu(ctx context.Context, userID, id string) error
}
