package product

import (
	"context"
	"errors"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/product/dto"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidBadge = errors.New("unknown badge value")
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	// Delete removes child rows first, then the product (causally sequenced).
	Delete(ctx context.Context, userID, id string) error

	FindVariants(ctx context.Context, productID string) ([]model.ProductVariant, error)
	InsertVariant(ctx context.Context, v *model.ProductVariant) error
	UpdateVariant(ctx context.Context, v *model.ProductVariant) error
	DeleteVariant(ctx context.Context, id string) error

	ReplaceImages(ctx context.Context, productID string, images []model.ProductImage) error
	ReplaceAttributes(ctx context.Context, productID string, attrs []model.ProductAttribute) error
	ReplaceSpecs(ctx context.Context, productID string, specs []model.ProductSpec) error
}
