package supplier

import (
	"context"
	"errors"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/supplier/dto"
)

var (
	ErrNotFound      = errors.New("supplier not found")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

type Repository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	FindByID(ctx context.Context, id string) (*model.Supplier, error)
	FindAll(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, userID, id string) error
}
