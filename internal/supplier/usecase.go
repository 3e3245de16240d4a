package supplier

import (
	"context"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/supplier/dto"
)

type UseCase interface {
	CreateSupplier(ctx context.Context, input *dto.SaveSupplierInput) (*model.Supplier, error)
	GetSupplier(ctx context.Context, userID, id string) (*model.Supplier, error)
	ListSuppliers(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, error)
	UpdateSupplier(ctx context.Context, input *dto.SaveSupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, userID, id string) error
}
