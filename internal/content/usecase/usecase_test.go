package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/glowmart/admin-service/internal/content"
	"github.com/glowmart/admin-service/internal/content/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/pkg/logger"
)

type fakeRepo struct {
	banners map[string]*model.Banner
	posts   map[string]*model.BlogPost
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		banners: make(map[string]*model.Banner),
		posts:   make(map[string]*model.BlogPost),
	}
}

func (r *fakeRepo) CreateBanner(_ context.Context, b *model.Banner) error {
	cp := *b
	r.banners[b.ID] = &cp
	return nil
}

func (r *fakeRepo) FindBannerByID(_ context.Context, id string) (*model.Banner, error) {
	b, ok := r.banners[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) FindBanners(_ context.Context, f *dto.BannerFilters) ([]model.Banner, error) {
	var out []model.Banner
	for _, b := range r.banners {
		if b.UserID == f.UserID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateBanner(_ context.Context, b *model.Banner) error {
	cp := *b
	r.banners[b.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteBanner(_ context.Context, _, id string) error {
	delete(r.banners, id)
	return nil
}

func (r *fakeRepo) CreatePost(_ context.Context, p *model.BlogPost) error {
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakeRepo) FindPostByID(_ context.Context, id string) (*model.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) FindPostBySlug(_ context.Context, userID, slug string) (*model.BlogPost, error) {
	for _, p := range r.posts {
		if p.UserID == userID && p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindPosts(_ context.Context, f *dto.PostFilters) ([]model.BlogPost, error) {
	var out []model.BlogPost
	for _, p := range r.posts {
		if p.UserID == f.UserID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdatePost(_ context.Context, p *model.BlogPost) error {
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakeRepo) DeletePost(_ context.Context, _, id string) error {
	delete(r.posts, id)
	return nil
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Summer Sale: 50% Off!", "summer-sale-50-off"},
		{"  trimmed  ", "trimmed"},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestCreatePostGeneratesSlugAndStartsUnpublished(t *testing.T) {
	uc := NewContentUseCase(newFakeRepo(), testLogger())

	p, err := uc.CreatePost(context.Background(), &dto.SavePostInput{
		UserID:  "u1",
		Title:   "New Arrivals This Week",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if p.Slug != "new-arrivals-this-week" {
		t.Errorf("slug = %q", p.Slug)
	}
	if p.IsPublished || p.PublishedAt != nil {
		t.Errorf("new post published: %v %v", p.IsPublished, p.PublishedAt)
	}
}

func TestCreatePostRejectsDuplicateSlug(t *testing.T) {
	uc := NewContentUseCase(newFakeRepo(), testLogger())

	input := &dto.SavePostInput{UserID: "u1", Title: "Same Title", Content: "body"}
	if _, err := uc.CreatePost(context.Background(), input); err != nil {
		t.Fatalf("first CreatePost: %v", err)
	}
	_, err := uc.CreatePost(context.Background(), input)
	if !errors.Is(err, content.ErrSlugTaken) {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestPublishSetsBothFieldsTogether(t *testing.T) {
	repo := newFakeRepo()
	uc := NewContentUseCase(repo, testLogger())

	p, err := uc.CreatePost(context.Background(), &dto.SavePostInput{
		UserID:  "u1",
		Title:   "Draft",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	published, err := uc.PublishPost(context.Background(), "u1", p.ID, true)
	if err != nil {
		t.Fatalf("PublishPost: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatalf("publish left fields split: %v %v", published.IsPublished, published.PublishedAt)
	}

	unpublished, err := uc.PublishPost(context.Background(), "u1", p.ID, false)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if unpublished.IsPublished || unpublished.PublishedAt != nil {
		t.Fatalf("unpublish left fields split: %v %v", unpublished.IsPublished, unpublished.PublishedAt)
	}
}

func TestPublishScopedToOwner(t *testing.T) {
	uc := NewContentUseCase(newFakeRepo(), testLogger())

	p, err := uc.CreatePost(context.Background(), &dto.SavePostInput{
		UserID:  "u1",
		Title:   "Draft",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	_, err = uc.PublishPost(context.Background(), "someone-else", p.ID, true)
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
