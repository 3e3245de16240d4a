package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/product"
	"github.com/glowmart/admin-service/internal/product/dto"
	"github.com/glowmart/admin-service/pkg/cache"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/glowmart/admin-service/pkg/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const productIndex = "products"

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, rc *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  rc,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.SaveProductInput) (*model.Product, error) {
	badge, err := parseBadge(input.Badge)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:             input.UserID,
		CategoryID:         optional(input.CategoryID),
		Name:               input.Name,
		Description:        optional(input.Description),
		ImageURL:           optional(input.ImageURL),
		BasePrice:          input.BasePrice,
		DiscountPercentage: input.DiscountPercentage,
		Badge:              badge,
		FrameSize:          optional(input.FrameSize),
		FrameMaterial:      optional(input.FrameMaterial),
		LensType:           optional(input.LensType),
		SortOrder:          input.SortOrder,
		IsActive:           true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	// A brand-new product has no persisted children: every submitted variant
	// is an insert, so the same save path applies with an empty baseline.
	if err := uc.saveChildren(ctx, p, input, nil); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background(), input.UserID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, userID, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.UserID != userID {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, keyErr := uc.listCacheKey(filters)
	if keyErr == nil && uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var cached struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Products, cached.Count, nil
			}
		}
	}

	if filters.SearchQuery != "" && uc.es != nil {
		products, count, err := uc.searchElastic(ctx, filters)
		if err == nil {
			return products, count, nil
		}
		uc.logger.Error("elasticsearch query failed, falling back to database", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if keyErr == nil && uc.cache != nil {
		payload := struct {
			Products []model.Product
			Count    int
		}{products, count}
		if data, err := json.Marshal(payload); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.SaveProductInput) (*model.Product, error) {
	badge, err := parseBadge(input.Badge)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.UserID != input.UserID {
		return nil, product.ErrNotFound
	}

	persisted := p.Variants

	p.CategoryID = optional(input.CategoryID)
	p.Name = input.Name
	p.Description = optional(input.Description)
	p.ImageURL = optional(input.ImageURL)
	p.BasePrice = input.BasePrice
	p.DiscountPercentage = input.DiscountPercentage
	p.Badge = badge
	p.FrameSize = optional(input.FrameSize)
	p.FrameMaterial = optional(input.FrameMaterial)
	p.LensType = optional(input.LensType)
	p.SortOrder = input.SortOrder
	p.IsActive = input.IsActive
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := uc.saveChildren(ctx, p, input, persisted); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background(), p.UserID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, userID, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || p.UserID != userID {
		return nil // Already gone
	}

	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background(), userID)
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from index", zap.Error(err))
			}
		}()
	}

	return nil
}

// saveChildren reconciles the submitted variants against the persisted ones
// and rewrites the remaining child collections. Operations run sequentially;
// the first failure aborts the rest and is the single error surfaced.
func (uc *productUseCase) saveChildren(ctx context.Context, p *model.Product, input *dto.SaveProductInput, persisted []model.ProductVariant) error {
	submitted := make([]model.ProductVariant, len(input.Variants))
	for i, v := range input.Variants {
		submitted[i] = model.ProductVariant{
			BaseModel:     model.BaseModel{ID: v.ID},
			ProductID:     p.ID,
			Name:          v.Name,
			Price:         v.Price,
			SKU:           v.SKU,
			StockQuantity: v.StockQuantity,
		}
	}

	plan := product.BuildVariantPlan(persisted, submitted)
	now := time.Now()

	for i := range plan.Updates {
		plan.Updates[i].UpdatedAt = now
		if err := uc.repo.UpdateVariant(ctx, &plan.Updates[i]); err != nil {
			return fmt.Errorf("update variant %s: %w", plan.Updates[i].ID, err)
		}
	}
	for i := range plan.Inserts {
		plan.Inserts[i].ID = uuid.New().String()
		plan.Inserts[i].CreatedAt = now
		plan.Inserts[i].UpdatedAt = now
		if err := uc.repo.InsertVariant(ctx, &plan.Inserts[i]); err != nil {
			return fmt.Errorf("insert variant %q: %w", plan.Inserts[i].Name, err)
		}
	}
	for _, id := range plan.Deletes {
		if err := uc.repo.DeleteVariant(ctx, id); err != nil {
			return fmt.Errorf("delete variant %s: %w", id, err)
		}
	}

	images := make([]model.ProductImage, len(input.Images))
	for i, img := range input.Images {
		images[i] = model.ProductImage{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			ImageURL:  img.ImageURL,
			SortOrder: i,
		}
	}
	if err := uc.repo.ReplaceImages(ctx, p.ID, images); err != nil {
		return err
	}

	attrs := make([]model.ProductAttribute, len(input.Attributes))
	for i, a := range input.Attributes {
		attrs[i] = model.ProductAttribute{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Name:      a.Name,
			Value:     a.Value,
		}
	}
	if err := uc.repo.ReplaceAttributes(ctx, p.ID, attrs); err != nil {
		return err
	}

	specs := make([]model.ProductSpec, len(input.Specifications))
	for i, s := range input.Specifications {
		specs[i] = model.ProductSpec{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Label:     s.Label,
			Value:     s.Value,
			SortOrder: i,
		}
	}
	return uc.repo.ReplaceSpecs(ctx, p.ID, specs)
}

func (uc *productUseCase) searchElastic(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"query_string": map[string]interface{}{
							"query":  fmt.Sprintf("*%s*", f.SearchQuery),
							"fields": []string{"name^3", "description"},
						},
					},
					{
						"term": map[string]interface{}{
							"user_id": f.UserID,
						},
					},
				},
			},
		},
		"from": (f.Page - 1) * f.PageSize,
	}
	if f.PageSize > 0 {
		q["size"] = f.PageSize
	}

	res, err := uc.es.Search(ctx, productIndex, q)
	if err != nil {
		return nil, 0, err
	}

	var products []model.Product
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	return products, res.Hits.Total.Value, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"user_id": { "type": "keyword" },
				"name": { "type": "text" },
				"description": { "type": "text" },
				"base_price": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}

func (uc *productUseCase) listCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%s:%x", filters.UserID, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("products:list:%s:*", userID)
	keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func parseBadge(s string) (model.Badge, error) {
	if s == "" {
		return model.BadgeNone, nil
	}
	b := model.Badge(s)
	if !b.Valid() {
		return model.BadgeNone, product.ErrInvalidBadge
	}
	return b, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
