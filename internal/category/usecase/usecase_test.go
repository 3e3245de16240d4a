package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/glowmart/admin-service/internal/category"
	"github.com/glowmart/admin-service/internal/category/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/pkg/logger"
)

type fakeRepo struct {
	mu         sync.Mutex
	categories []model.Category
	failOnID   string // UpdateSortOrder for this id fails
	findCalls  int
	block      chan struct{} // when set, UpdateSortOrder waits on it
	started    chan struct{} // closed on the first UpdateSortOrder call
	startOnce  sync.Once
}

func (f *fakeRepo) Create(ctx context.Context, c *model.Category) error { return nil }

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*model.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	out := make([]model.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, c *model.Category) error { return nil }

func (f *fakeRepo) UpdateSortOrder(ctx context.Context, userID, id string, sortOrder int) error {
	if f.started != nil {
		f.startOnce.Do(func() { close(f.started) })
	}
	if f.block != nil {
		<-f.block
	}
	if id == f.failOnID {
		return errors.New("write failed")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].SortOrder = sortOrder
		}
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, userID, id string) error      { return nil }
func (f *fakeRepo) CreateMenu(ctx context.Context, m *model.Menu) error      { return nil }
func (f *fakeRepo) FindMenus(ctx context.Context, userID string) ([]model.Menu, error) {
	return nil, nil
}
func (f *fakeRepo) DeleteMenu(ctx context.Context, userID, id string) error { return nil }

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
}

func namedCategories(names ...string) []model.Category {
	out := make([]model.Category, len(names))
	for i, n := range names {
		out[i] = model.Category{
			BaseModel: model.BaseModel{ID: n},
			UserID:    "u1",
			Name:      n,
			SortOrder: i,
		}
	}
	return out
}

func names(cats []model.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

func TestMoveItem(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		ok       bool
	}{
		{"move 2 to 0", 2, 0, []string{"C", "A", "B", "D"}, true},
		{"move 0 to 3", 0, 3, []string{"B", "C", "D", "A"}, true},
		{"move 1 to 2", 1, 2, []string{"A", "C", "B", "D"}, true},
		{"no-op", 0, 0, []string{"A", "B", "C", "D"}, true},
		{"from out of range", 4, 0, nil, false},
		{"negative to", 0, -1, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := namedCategories("A", "B", "C", "D")
			got, ok := moveItem(items, tt.from, tt.to)
			if ok != tt.ok {
				t.Fatalf("moveItem ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			gotNames := names(got)
			for i := range tt.want {
				if gotNames[i] != tt.want[i] {
					t.Fatalf("moveItem = %v, want %v", gotNames, tt.want)
				}
			}
			// Source list must be untouched.
			if items[0].Name != "A" || items[3].Name != "D" {
				t.Fatal("moveItem mutated its input")
			}
		})
	}
}

func TestReorderPersistsNewIndexes(t *testing.T) {
	repo := &fakeRepo{categories: namedCategories("A", "B", "C", "D")}
	uc := NewCategoryUseCase(repo, testLogger())

	got, err := uc.Reorder(context.Background(), &dto.ReorderInput{UserID: "u1", From: 2, To: 0})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	want := []string{"C", "A", "B", "D"}
	gotNames := names(got)
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("Reorder = %v, want %v", gotNames, want)
		}
	}
	for i, c := range got {
		if c.SortOrder != i {
			t.Errorf("category %s sort_order = %d, want %d", c.Name, c.SortOrder, i)
		}
	}

	// Every row's persisted sort_order equals its new index.
	for _, c := range repo.categories {
		for i, w := range want {
			if c.ID == w && c.SortOrder != i {
				t.Errorf("persisted %s sort_order = %d, want %d", c.ID, c.SortOrder, i)
			}
		}
	}
}

func TestReorderNoOpIssuesNoWrites(t *testing.T) {
	repo := &fakeRepo{categories: namedCategories("A", "B", "C")}
	// Any write would fail; a no-op move must not issue one.
	repo.failOnID = "A"
	uc := NewCategoryUseCase(repo, testLogger())

	got, err := uc.Reorder(context.Background(), &dto.ReorderInput{UserID: "u1", From: 0, To: 0})
	if err != nil {
		t.Fatalf("Reorder no-op: %v", err)
	}
	if len(got) != 3 || got[0].Name != "A" {
		t.Fatalf("Reorder no-op returned %v", names(got))
	}
}

func TestReorderFailureReloadsFromStore(t *testing.T) {
	repo := &fakeRepo{categories: namedCategories("A", "B", "C", "D"), failOnID: "B"}
	uc := NewCategoryUseCase(repo, testLogger())

	got, err := uc.Reorder(context.Background(), &dto.ReorderInput{UserID: "u1", From: 2, To: 0})
	if err == nil {
		t.Fatal("expected error from failed sort_order write")
	}
	if got == nil {
		t.Fatal("expected reloaded list alongside the error")
	}
	if repo.findCalls < 2 {
		t.Fatalf("expected a reload FindAll after failure, got %d calls", repo.findCalls)
	}
}

func TestReorderRejectsConcurrent(t *testing.T) {
	repo := &fakeRepo{
		categories: namedCategories("A", "B", "C"),
		block:      make(chan struct{}),
		started:    make(chan struct{}),
	}
	uc := NewCategoryUseCase(repo, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := uc.Reorder(context.Background(), &dto.ReorderInput{UserID: "u1", From: 0, To: 2})
		done <- err
	}()

	// Wait until the first reorder holds the scope, then attempt a second one.
	<-repo.started
	_, second := uc.Reorder(context.Background(), &dto.ReorderInput{UserID: "u1", From: 0, To: 1})
	close(repo.block)
	if err := <-done; err != nil {
		t.Fatalf("first reorder: %v", err)
	}
	if !errors.Is(second, category.ErrReorderInFlight) {
		t.Fatalf("second reorder error = %v, want ErrReorderInFlight", second)
	}
}
