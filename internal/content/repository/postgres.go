package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glowmart/admin-service/internal/content/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateBanner(ctx context.Context, b *model.Banner) error {
	query := `
        INSERT INTO banners (
            id, user_id, title, subtitle, image_url, link_url, position,
            sort_order, is_active, created_at, updated_at
        )
        VALUES (
            :id, :user_id, :title, :subtitle, :image_url, :link_url, :position,
            :sort_order, :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) FindBannerByID(ctx context.Context, id string) (*model.Banner, error) {
	var b model.Banner
	err := r.DB.GetContext(ctx, &b, `SELECT * FROM banners WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGRepository) FindBanners(ctx context.Context, f *dto.BannerFilters) ([]model.Banner, error) {
	var banners []model.Banner

	conditions := []string{"user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.Position != "" {
		conditions = append(conditions, "position = :position")
		args["position"] = f.Position
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}

	query := "SELECT * FROM banners WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY sort_order ASC, created_at ASC"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &banners, args); err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *PGRepository) UpdateBanner(ctx context.Context, b *model.Banner) error {
	query := `
        UPDATE banners
        SET title = :title,
            subtitle = :subtitle,
            image_url = :image_url,
            link_url = :link_url,
            position = :position,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) DeleteBanner(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM banners WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func (r *PGRepository) CreatePost(ctx context.Context, p *model.BlogPost) error {
	query := `
        INSERT INTO blog_posts (
            id, user_id, title, slug, excerpt, content, cover_image_url,
            tags, is_published, published_at, created_at, updated_at
        )
        VALUES (
            :id, :user_id, :title, :slug, :excerpt, :content, :cover_image_url,
            :tags, :is_published, :published_at, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindPostByID(ctx context.Context, id string) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM blog_posts WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindPostBySlug(ctx context.Context, userID, slug string) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.DB.GetContext(ctx, &p,
		`SELECT * FROM blog_posts WHERE user_id = $1 AND slug = $2 LIMIT 1`, userID, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindPosts(ctx context.Context, f *dto.PostFilters) ([]model.BlogPost, error) {
	var posts []model.BlogPost

	conditions := []string{"user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.IsPublished != nil {
		conditions = append(conditions, "is_published = :is_published")
		args["is_published"] = *f.IsPublished
	}
	if f.Tag != "" {
		// Tags are stored comma-separated; match the tag as a list element.
		conditions = append(conditions, "',' || tags || ',' ILIKE :tag")
		args["tag"] = "%," + f.Tag + ",%"
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(title ILIKE :search OR content ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	query := "SELECT * FROM blog_posts WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY published_at DESC NULLS LAST, created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &posts, args); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PGRepository) UpdatePost(ctx context.Context, p *model.BlogPost) error {
	query := `
        UPDATE blog_posts
        SET title = :title,
            slug = :slug,
            excerpt = :excerpt,
            content = :content,
            cover_image_url = :cover_image_url,
            tags = :tags,
            is_published = :is_published,
            published_at = :published_at,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) DeletePost(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = $1 AND user_id = $2", id, userID)
	return err
}
