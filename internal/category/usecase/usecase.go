package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/glowmart/admin-service/internal/category"
	"github.com/glowmart/admin-service/internal/category/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger

	// Guards against interleaved sort_order writes: only one reorder may be
	// in flight per list scope (user + menu).
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		logger:   log,
		inFlight: make(map[string]bool),
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	now := time.Now()

	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    input.UserID,
		MenuID:    input.MenuID,
		Name:      input.Name,
		Subtitle:  optional(input.Subtitle),
		ImageURL:  optional(input.ImageURL),
		SortOrder: input.SortOrder,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.UserID != input.UserID {
		return nil, category.ErrNotFound
	}

	cat.MenuID = input.MenuID
	cat.Name = input.Name
	cat.Subtitle = optional(input.Subtitle)
	cat.ImageURL = optional(input.ImageURL)
	cat.SortOrder = input.SortOrder
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, userID, id)
}

// Reorder applies array-move semantics to the current ordered list, persists
// every row's sort_order as its new index with one concurrent update per row,
// and waits for all of them. If any write fails the in-memory result is
// discarded and the list is reloaded from the store — reload-on-failure beats
// partial rollback for an operation this cheap to redo.
func (uc *categoryUseCase) Reorder(ctx context.Context, input *dto.ReorderInput) ([]model.Category, error) {
	scope := reorderScope(input.UserID, input.MenuID)
	if !uc.acquire(scope) {
		return nil, category.ErrReorderInFlight
	}
	defer uc.release(scope)

	filters := &dto.CategoryFilters{UserID: input.UserID, MenuID: input.MenuID}
	list, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	moved, ok := moveItem(list, input.From, input.To)
	if !ok {
		return nil, category.ErrNotFound
	}
	if input.From == input.To {
		// No-op move, nothing to persist.
		return moved, nil
	}

	for i := range moved {
		moved[i].SortOrder = i
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		writeErr error
	)
	for i := range moved {
		wg.Add(1)
		go func(c model.Category) {
			defer wg.Done()
			if err := uc.repo.UpdateSortOrder(ctx, c.UserID, c.ID, c.SortOrder); err != nil {
				errOnce.Do(func() { writeErr = err })
			}
		}(moved[i])
	}
	wg.Wait()

	if writeErr != nil {
		uc.logger.Error("reorder persistence failed, reloading list", zap.Error(writeErr))
		reloaded, reloadErr := uc.repo.FindAll(ctx, filters)
		if reloadErr != nil {
			return nil, reloadErr
		}
		return reloaded, writeErr
	}

	return moved, nil
}

func (uc *categoryUseCase) CreateMenu(ctx context.Context, input *dto.CreateMenuInput) (*model.Menu, error) {
	now := time.Now()
	m := &model.Menu{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    input.UserID,
		Name:      input.Name,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if err := uc.repo.CreateMenu(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *categoryUseCase) ListMenus(ctx context.Context, userID string) ([]model.Menu, error) {
	return uc.repo.FindMenus(ctx, userID)
}

func (uc *categoryUseCase) DeleteMenu(ctx context.Context, userID, id string) error {
	return uc.repo.DeleteMenu(ctx, userID, id)
}

// moveItem removes the element at from and reinserts it at to; everything
// between the two positions shifts by one. Returns false on out-of-range
// indices. The input slice is not mutated.
func moveItem(items []model.Category, from, to int) ([]model.Category, bool) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, false
	}

	out := make([]model.Category, 0, len(items))
	out = append(out, items...)

	item := out[from]
	out = append(out[:from], out[from+1:]...)

	out = append(out, model.Category{})
	copy(out[to+1:], out[to:])
	out[to] = item

	return out, true
}

func (uc *categoryUseCase) acquire(scope string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inFlight[scope] {
		return false
	}
	uc.inFlight[scope] = true
	return true
}

func (uc *categoryUseCase) release(scope string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, scope)
}

func reorderScope(userID string, menuID *string) string {
	if menuID == nil {
		return userID
	}
	return userID + ":" + *menuID
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
