package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/supplier/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Supplier) error {
	query := `
        INSERT INTO suppliers (
            id, user_id, name, contact_person, email, phone, address,
            balance, rating, is_active, created_at, updated_at
        )
        VALUES (
            :id, :user_id, :name, :contact_person, :email, :phone, :address,
            :balance, :rating, :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Supplier, error) {
	var s model.Supplier
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM suppliers WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.SupplierFilters) ([]model.Supplier, error) {
	var suppliers []model.Supplier

	conditions := []string{"user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.MinRating != nil {
		conditions = append(conditions, "rating >= :min_rating")
		args["min_rating"] = *f.MinRating
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR contact_person ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	query := "SELECT * FROM suppliers WHERE " + strings.Join(conditions, " AND ") + " ORDER BY name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &suppliers, args); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Supplier) error {
	query := `
        UPDATE suppliers
        SET name = :name,
            contact_person = :contact_person,
            email = :email,
            phone = :phone,
            address = :address,
            balance = :balance,
            rating = :rating,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM suppliers WHERE id = $1 AND user_id = $2", id, userID)
	return err
}
