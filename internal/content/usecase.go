package content

import (
	"context"

	"github.com/glowmart/admin-service/internal/content/dto"
	"github.com/glowmart/admin-service/internal/model"
)

type UseCase interface {
	CreateBanner(ctx context.Context, input *dto.SaveBannerInput) (*model.Banner, error)
	GetBanner(ctx context.Context, userID, id string) (*model.Banner, error)
	ListBanners(ctx context.Context, filters *dto.BannerFilters) ([]model.Banner, error)
	UpdateBanner(ctx context.Context, input *dto.SaveBannerInput) (*model.Banner, error)
	DeleteBanner(ctx context.Context, userID, id string) error

	CreatePost(ctx context.Context, input *dto.SavePostInput) (*model.BlogPost, error)
	GetPost(ctx context.Context, userID, id string) (*model.BlogPost, error)
	ListPosts(ctx context.Context, filters *dto.PostFilters) ([]model.BlogPost, error)
	UpdatePost(ctx context.Context, input *dto.SavePostInput) (*model.BlogPost, error)
	DeletePost(ctx context.Context, userID, id string) error

	// PublishPost flips is_published and stamps published_at in one write;
	// unpublishing clears both fields together.
	PublishPost(ctx context.Context, userID, id string, publish bool) (*model.BlogPost, error)
}
