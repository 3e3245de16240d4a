package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/product/dto"
	"github.com/glowmart/admin-service/pkg/logger"
)

type fakeRepo struct {
	product  *model.Product
	variants []model.ProductVariant

	updates, inserts, deletes int
	failOnUpdate              bool
}

func (f *fakeRepo) Create(ctx context.Context, p *model.Product) error { return nil }

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	if f.product == nil || f.product.ID != id {
		return nil, nil
	}
	p := *f.product
	p.Variants = f.variants
	return &p, nil
}

func (f *fakeRepo) FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Update(ctx context.Context, p *model.Product) error   { return nil }
func (f *fakeRepo) Delete(ctx context.Context, userID, id string) error { return nil }

func (f *fakeRepo) FindVariants(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	return f.variants, nil
}

func (f *fakeRepo) InsertVariant(ctx context.Context, v *model.ProductVariant) error {
	f.inserts++
	return nil
}

func (f *fakeRepo) UpdateVariant(ctx context.Context, v *model.ProductVariant) error {
	if f.failOnUpdate {
		return errors.New("update failed")
	}
	f.updates++
	return nil
}

func (f *fakeRepo) DeleteVariant(ctx context.Context, id string) error {
	f.deletes++
	return nil
}

func (f *fakeRepo) ReplaceImages(ctx context.Context, productID string, images []model.ProductImage) error {
	return nil
}

func (f *fakeRepo) ReplaceAttributes(ctx context.Context, productID string, attrs []model.ProductAttribute) error {
	return nil
}

func (f *fakeRepo) ReplaceSpecs(ctx context.Context, productID string, specs []model.ProductSpec) error {
	return nil
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
}

func editedProductRepo() *fakeRepo {
	return &fakeRepo{
		product: &model.Product{
			BaseModel: model.BaseModel{ID: "p1"},
			UserID:    "u1",
			Name:      "Sunglasses",
		},
		variants: []model.ProductVariant{
			{BaseModel: model.BaseModel{ID: "v1"}, ProductID: "p1", Name: "Small"},
			{BaseModel: model.BaseModel{ID: "v2"}, ProductID: "p1", Name: "Medium"},
		},
	}
}

func TestUpdateProductReconcilesVariants(t *testing.T) {
	repo := editedProductRepo()
	uc := NewProductUseCase(repo, nil, nil, testLogger())

	input := &dto.SaveProductInput{
		ID:     "p1",
		UserID: "u1",
		Name:   "Sunglasses",
		Variants: []dto.VariantInput{
			{ID: "v1", Name: "Small (edited)", Price: 10},
			{Name: "Large", Price: 12},
		},
	}

	if _, err := uc.UpdateProduct(context.Background(), input); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	if repo.updates != 1 {
		t.Errorf("updates = %d, want 1", repo.updates)
	}
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
	if repo.deletes != 1 {
		t.Errorf("deletes = %d, want 1", repo.deletes)
	}
}

func TestUpdateProductAbortsOnFirstError(t *testing.T) {
	repo := editedProductRepo()
	repo.failOnUpdate = true
	uc := NewProductUseCase(repo, nil, nil, testLogger())

	input := &dto.SaveProductInput{
		ID:     "p1",
		UserID: "u1",
		Name:   "Sunglasses",
		Variants: []dto.VariantInput{
			{ID: "v1", Name: "Small (edited)"},
			{Name: "Large"},
		},
	}

	_, err := uc.UpdateProduct(context.Background(), input)
	if err == nil {
		t.Fatal("expected the failed variant update to surface")
	}
	// Remaining operations must not have run.
	if repo.inserts != 0 || repo.deletes != 0 {
		t.Fatalf("inserts = %d, deletes = %d after abort, want 0/0", repo.inserts, repo.deletes)
	}
}

func TestUpdateProductRejectsUnknownBadge(t *testing.T) {
	repo := editedProductRepo()
	uc := NewProductUseCase(repo, nil, nil, testLogger())

	input := &dto.SaveProductInput{
		ID:     "p1",
		UserID: "u1",
		Name:   "Sunglasses",
		Badge:  "mega_deal",
	}

	if _, err := uc.UpdateProduct(context.Background(), input); err == nil {
		t.Fatal("expected unknown badge to be rejected")
	}
}

func TestUpdateProductScopedToOwner(t *testing.T) {
	repo := editedProductRepo()
	uc := NewProductUseCase(repo, nil, nil, testLogger())

	input := &dto.SaveProductInput{
		ID:     "p1",
		UserID: "someone-else",
		Name:   "Sunglasses",
	}

	if _, err := uc.UpdateProduct(context.Background(), input); err == nil {
		t.Fatal("expected not-found for a foreign owner")
	}
}
