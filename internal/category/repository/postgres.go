package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/glowmart/admin-service/internal/category/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, user_id, menu_id, name, subtitle, image_url, sort_order, created_at, updated_at)
        VALUES (:id, :user_id, :menu_id, :name, :subtitle, :image_url, :sort_order, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, error) {
	var categories []model.Category

	conditions := []string{"user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.MenuID != nil {
		if *f.MenuID == "" {
			conditions = append(conditions, "menu_id IS NULL")
		} else {
			conditions = append(conditions, "menu_id = :menu_id")
			args["menu_id"] = *f.MenuID
		}
	}

	query := "SELECT * FROM categories WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY sort_order ASC, name ASC"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &categories, args); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET menu_id = :menu_id,
            name = :name,
            subtitle = :subtitle,
            image_url = :image_url,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) UpdateSortOrder(ctx context.Context, userID, id string, sortOrder int) error {
	query := `UPDATE categories SET sort_order = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`
	_, err := r.DB.ExecContext(ctx, query, sortOrder, id, userID)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func (r *PGRepository) CreateMenu(ctx context.Context, m *model.Menu) error {
	query := `
        INSERT INTO menus (id, user_id, name, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :user_id, :name, :sort_order, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) FindMenus(ctx context.Context, userID string) ([]model.Menu, error) {
	var menus []model.Menu
	query := `SELECT * FROM menus WHERE user_id = $1 ORDER BY sort_order ASC, name ASC`
	if err := r.DB.SelectContext(ctx, &menus, query, userID); err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *PGRepository) DeleteMenu(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM menus WHERE id = $1 AND user_id = $2", id, userID)
	return err
}
