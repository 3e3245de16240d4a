package deal

import (
	"context"

	"github.com/glowmart/admin-service/internal/deal/dto"
)

type UseCase interface {
	CreateDeal(ctx context.Context, input *dto.CreateDealInput) (*dto.DealView, error)
	GetDeal(ctx context.Context, userID, id string) (*dto.DealView, error)
	ListDeals(ctx context.Context, filters *dto.DealFilters) ([]dto.DealView, int, error)
	UpdateDeal(ctx context.Context, input *dto.UpdateDealInput) (*dto.DealView, error)
	ToggleActive(ctx context.Context, userID, id string) (*dto.DealView, error)
	DeleteDeal(ctx context.Context, userID, id string) error

	// RecordPurchase is driven by the purchase event listener.
	RecordPurchase(ctx context.Context, dealID string, qty int) error
}
