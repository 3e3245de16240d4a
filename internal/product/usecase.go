package product

import (
	"context"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.SaveProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, userID, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	// UpdateProduct saves the product row and reconciles the submitted child
	// collections against storage.
	UpdateProduct(ctx context.Context, input *dto.SaveProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, userID, id string) error
}
