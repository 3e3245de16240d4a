package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glowmart/admin-service/internal/deal"
	"github.com/glowmart/admin-service/internal/deal/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, d *model.Deal) error {
	query := `
        INSERT INTO deals (
            id, user_id, product_id, title, description, original_price, deal_price,
            discount_percentage, start_time, end_time, total_quantity, sold_quantity,
            remaining_quantity, is_active, is_featured, badge_text, badge_color,
            created_at, updated_at
        )
        VALUES (
            :id, :user_id, :product_id, :title, :description, :original_price, :deal_price,
            :discount_percentage, :start_time, :end_time, :total_quantity, :sold_quantity,
            :remaining_quantity, :is_active, :is_featured, :badge_text, :badge_color,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Deal, error) {
	var d model.Deal
	err := r.DB.GetContext(ctx, &d, `SELECT * FROM deals WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.DealFilters) ([]model.Deal, int, error) {
	var deals []model.Deal
	var count int

	conditions := []string{"user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.Featured != nil {
		conditions = append(conditions, "is_featured = :is_featured")
		args["is_featured"] = *f.Featured
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	countQuery := "SELECT count(*) FROM deals" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM deals" + whereClause + " ORDER BY start_time DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &deals, args); err != nil {
		return nil, 0, err
	}
	return deals, count, nil
}

func (r *PGRepository) Update(ctx context.Context, d *model.Deal) error {
	query := `
        UPDATE deals
        SET product_id = :product_id,
            title = :title,
            description = :description,
            original_price = :original_price,
            deal_price = :deal_price,
            discount_percentage = :discount_percentage,
            start_time = :start_time,
            end_time = :end_time,
            total_quantity = :total_quantity,
            remaining_quantity = :remaining_quantity,
            is_active = :is_active,
            is_featured = :is_featured,
            badge_text = :badge_text,
            badge_color = :badge_color,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM deals WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func (r *PGRepository) RecordPurchase(ctx context.Context, dealID string, qty int) error {
	if qty <= 0 {
		return nil
	}

	query := `
        UPDATE deals
        SET sold_quantity = sold_quantity + $1,
            remaining_quantity = remaining_quantity - $1,
            updated_at = NOW()
        WHERE id = $2 AND remaining_quantity >= $1
    `
	res, err := r.DB.ExecContext(ctx, query, qty, dealID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return deal.ErrOutOfStock
	}
	return nil
}
