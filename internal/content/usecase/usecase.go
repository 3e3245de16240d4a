package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/glowmart/admin-service/internal/content"
	"github.com/glowmart/admin-service/internal/content/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/google/uuid"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

type contentUseCase struct {
	repo   content.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewContentUseCase(repo content.Repository, log logger.ZapLogger) content.UseCase {
	return &contentUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *contentUseCase) CreateBanner(ctx context.Context, input *dto.SaveBannerInput) (*model.Banner, error) {
	now := uc.now()
	b := &model.Banner{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    input.UserID,
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		ImageURL:  input.ImageURL,
		LinkURL:   input.LinkURL,
		Position:  input.Position,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if input.IsActive != nil {
		b.IsActive = *input.IsActive
	}

	if err := uc.repo.CreateBanner(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *contentUseCase) GetBanner(ctx context.Context, userID, id string) (*model.Banner, error) {
	b, err := uc.repo.FindBannerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.UserID != userID {
		return nil, content.ErrNotFound
	}
	return b, nil
}

func (uc *contentUseCase) ListBanners(ctx context.Context, filters *dto.BannerFilters) ([]model.Banner, error) {
	return uc.repo.FindBanners(ctx, filters)
}

func (uc *contentUseCase) UpdateBanner(ctx context.Context, input *dto.SaveBannerInput) (*model.Banner, error) {
	b, err := uc.GetBanner(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	b.Title = input.Title
	b.Subtitle = input.Subtitle
	b.ImageURL = input.ImageURL
	b.LinkURL = input.LinkURL
	b.Position = input.Position
	b.SortOrder = input.SortOrder
	if input.IsActive != nil {
		b.IsActive = *input.IsActive
	}
	b.UpdatedAt = uc.now()

	if err := uc.repo.UpdateBanner(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *contentUseCase) DeleteBanner(ctx context.Context, userID, id string) error {
	return uc.repo.DeleteBanner(ctx, userID, id)
}

func (uc *contentUseCase) CreatePost(ctx context.Context, input *dto.SavePostInput) (*model.BlogPost, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	if existing, err := uc.repo.FindPostBySlug(ctx, input.UserID, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, content.ErrSlugTaken
	}

	now := uc.now()
	p := &model.BlogPost{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        input.UserID,
		Title:         input.Title,
		Slug:          slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		CoverImageURL: input.CoverImageURL,
		Tags:          input.Tags,
		IsPublished:   false,
	}

	if err := uc.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *contentUseCase) GetPost(ctx context.Context, userID, id string) (*model.BlogPost, error) {
	p, err := uc.repo.FindPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.UserID != userID {
		return nil, content.ErrNotFound
	}
	return p, nil
}

func (uc *contentUseCase) ListPosts(ctx context.Context, filters *dto.PostFilters) ([]model.BlogPost, error) {
	return uc.repo.FindPosts(ctx, filters)
}

func (uc *contentUseCase) UpdatePost(ctx context.Context, input *dto.SavePostInput) (*model.BlogPost, error) {
	p, err := uc.GetPost(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	if slug != p.Slug {
		if existing, err := uc.repo.FindPostBySlug(ctx, input.UserID, slug); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, content.ErrSlugTaken
		}
	}

	p.Title = input.Title
	p.Slug = slug
	p.Excerpt = input.Excerpt
	p.Content = input.Content
	p.CoverImageURL = input.CoverImageURL
	p.Tags = input.Tags
	p.UpdatedAt = uc.now()

	if err := uc.repo.UpdatePost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *contentUseCase) DeletePost(ctx context.Context, userID, id string) error {
	return uc.repo.DeletePost(ctx, userID, id)
}

func (uc *contentUseCase) PublishPost(ctx context.Context, userID, id string, publish bool) (*model.BlogPost, error) {
	p, err := uc.GetPost(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if publish {
		p.IsPublished = true
		p.PublishedAt = &now
	} else {
		p.IsPublished = false
		p.PublishedAt = nil
	}
	p.UpdatedAt = now

	if err := uc.repo.UpdatePost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Slugify lowercases the title and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
