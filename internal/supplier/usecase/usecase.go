package usecase

import (
	"context"
	"time"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/supplier"
	"github.com/glowmart/admin-service/internal/supplier/dto"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/google/uuid"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.SaveSupplierInput) (*model.Supplier, error) {
	if input.Rating < 0 || input.Rating > 5 {
		return nil, supplier.ErrInvalidRating
	}

	now := uc.now()
	s := &model.Supplier{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        input.UserID,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		Balance:       input.Balance,
		Rating:        input.Rating,
		IsActive:      true,
	}
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, userID, id string) (*model.Supplier, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.UserID != userID {
		return nil, supplier.ErrNotFound
	}
	return s, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, input *dto.SaveSupplierInput) (*model.Supplier, error) {
	if input.Rating < 0 || input.Rating > 5 {
		return nil, supplier.ErrInvalidRating
	}

	s, err := uc.GetSupplier(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	s.Name = input.Name
	s.ContactPerson = input.ContactPerson
	s.Email = input.Email
	s.Phone = input.Phone
	s.Address = input.Address
	s.Balance = input.Balance
	s.Rating = input.Rating
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}
	s.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, userID, id)
}
