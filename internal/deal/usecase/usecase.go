package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/glowmart/admin-service/internal/deal"
	"github.com/glowmart/admin-service/internal/deal/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/pkg/cache"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listCacheTTL = 30 * time.Second

type dealUseCase struct {
	repo   deal.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
	now    func() time.Time
}

func NewDealUseCase(repo deal.Repository, rc *cache.RedisClient, log logger.ZapLogger) deal.UseCase {
	return &dealUseCase{
		repo:   repo,
		cache:  rc,
		logger: log,
		now:    time.Now,
	}
}

func (uc *dealUseCase) CreateDeal(ctx context.Context, input *dto.CreateDealInput) (*dto.DealView, error) {
	discount, err := deal.DiscountPercent(input.OriginalPrice, input.DealPrice)
	if err != nil {
		return nil, err
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, deal.ErrInvalidWindow
	}

	now := uc.now()
	d := &model.Deal{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:             input.UserID,
		ProductID:          input.ProductID,
		Title:              input.Title,
		Description:        optional(input.Description),
		OriginalPrice:      input.OriginalPrice,
		DealPrice:          input.DealPrice,
		DiscountPercentage: discount,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		TotalQuantity:      input.TotalQuantity,
		SoldQuantity:       0,
		RemainingQuantity:  input.TotalQuantity,
		IsActive:           true,
		IsFeatured:         input.IsFeatured,
		BadgeText:          optional(input.BadgeText),
		BadgeColor:         optional(input.BadgeColor),
	}

	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background(), input.UserID)

	return uc.view(d), nil
}

func (uc *dealUseCase) GetDeal(ctx context.Context, userID, id string) (*dto.DealView, error) {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.UserID != userID {
		return nil, deal.ErrNotFound
	}
	return uc.view(d), nil
}

func (uc *dealUseCase) ListDeals(ctx context.Context, filters *dto.DealFilters) ([]dto.DealView, int, error) {
	cacheKey, keyErr := uc.listCacheKey(filters)
	if keyErr == nil && uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var cached struct {
				Deals []model.Deal
				Count int
			}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				// Status is evaluated per request even on a cache hit: the
				// cached rows age but the clock does not.
				return uc.views(cached.Deals), cached.Count, nil
			}
		}
	}

	deals, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if keyErr == nil && uc.cache != nil {
		payload := struct {
			Deals []model.Deal
			Count int
		}{deals, count}
		if data, err := json.Marshal(payload); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return uc.views(deals), count, nil
}

func (uc *dealUseCase) UpdateDeal(ctx context.Context, input *dto.UpdateDealInput) (*dto.DealView, error) {
	discount, err := deal.DiscountPercent(input.OriginalPrice, input.DealPrice)
	if err != nil {
		return nil, err
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, deal.ErrInvalidWindow
	}

	d, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if d == nil || d.UserID != input.UserID {
		return nil, deal.ErrNotFound
	}

	d.ProductID = input.ProductID
	d.Title = input.Title
	d.Description = optional(input.Description)
	d.OriginalPrice = input.OriginalPrice
	d.DealPrice = input.DealPrice
	d.DiscountPercentage = discount
	d.StartTime = input.StartTime
	d.EndTime = input.EndTime
	// Changing the total keeps the sold count and re-derives remaining.
	d.TotalQuantity = input.TotalQuantity
	d.RemainingQuantity = input.TotalQuantity - d.SoldQuantity
	d.IsActive = input.IsActive
	d.IsFeatured = input.IsFeatured
	d.BadgeText = optional(input.BadgeText)
	d.BadgeColor = optional(input.BadgeColor)
	d.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background(), d.UserID)

	return uc.view(d), nil
}

func (uc *dealUseCase) ToggleActive(ctx context.Context, userID, id string) (*dto.DealView, error) {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.UserID != userID {
		return nil, deal.ErrNotFound
	}

	d.IsActive = !d.IsActive
	d.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background(), userID)

	return uc.view(d), nil
}

func (uc *dealUseCase) DeleteDeal(ctx context.Context, userID, id string) error {
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	go uc.invalidateListCache(context.Background(), userID)
	return nil
}

func (uc *dealUseCase) RecordPurchase(ctx context.Context, dealID string, qty int) error {
	if err := uc.repo.RecordPurchase(ctx, dealID, qty); err != nil {
		return err
	}

	if d, err := uc.repo.FindByID(ctx, dealID); err == nil && d != nil {
		go uc.invalidateListCache(context.Background(), d.UserID)
	}
	return nil
}

func (uc *dealUseCase) view(d *model.Deal) *dto.DealView {
	now := uc.now()
	return &dto.DealView{
		Deal:          *d,
		Status:        string(deal.EvaluateStatus(d, now)),
		TimeRemaining: deal.TimeRemaining(d.EndTime, now),
	}
}

func (uc *dealUseCase) views(deals []model.Deal) []dto.DealView {
	out := make([]dto.DealView, len(deals))
	for i := range deals {
		out[i] = *uc.view(&deals[i])
	}
	return out
}

func (uc *dealUseCase) listCacheKey(filters *dto.DealFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("deals:list:%s:%x", filters.UserID, md5.Sum(data)), nil
}

func (uc *dealUseCase) invalidateListCache(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("deals:list:%s:*", userID)
	keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
	if err != nil {
		uc.logger.Warn("deal cache invalidation failed", zap.Error(err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
