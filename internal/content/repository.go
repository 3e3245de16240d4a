package content

import (
	"context"
	"errors"

	"github.com/glowmart/admin-service/internal/content/dto"
	"github.com/glowmart/admin-service/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrSlugTaken = errors.New("slug already in use")
)

type Repository interface {
	CreateBanner(ctx context.Context, banner *model.Banner) error
	FindBannerByID(ctx context.Context, id string) (*model.Banner, error)
	FindBanners(ctx context.Context, filters *dto.BannerFilters) ([]model.Banner, error)
	UpdateBanner(ctx context.Context, banner *model.Banner) error
	DeleteBanner(ctx context.Context, userID, id string) error

	CreatePost(ctx context.Context, post *model.BlogPost) error
	FindPostByID(ctx context.Context, id string) (*model.BlogPost, error)
	FindPostBySlug(ctx context.Context, userID, slug string) (*model.BlogPost, error)
	FindPosts(ctx context.Context, filters *dto.PostFilters) ([]model.BlogPost, error)
	UpdatePost(ctx context.Context, post *model.BlogPost) error
	DeletePost(ctx context.Context, userID, id string) error
}
