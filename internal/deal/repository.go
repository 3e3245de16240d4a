package deal

import (
	"context"
	"errors"

	"github.com/glowmart/admin-service/internal/deal/dto"
	"github.com/glowmart/admin-service/internal/model"
)

var (
	ErrNotFound       = errors.New("deal not found")
	ErrInvalidPricing = errors.New("deal price must be strictly less than a positive original price")
	ErrInvalidWindow  = errors.New("end time must be after start time")
	ErrOutOfStock     = errors.New("insufficient remaining quantity")
)

type Repository interface {
	Create(ctx context.Context, deal *model.Deal) error
	FindByID(ctx context.Context, id string) (*model.Deal, error)
	FindAll(ctx context.Context, filters *dto.DealFilters) ([]model.Deal, int, error)
	Update(ctx context.Context, deal *model.Deal) error
	Delete(ctx context.Context, userID, id string) error

	// RecordPurchase atomically moves qty from remaining to sold. Returns
	// ErrOutOfStock when the deal has fewer than qty units left.
	RecordPurchase(ctx context.Context, dealID string, qty int) error
}
