package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glowmart/admin-service/internal/expense/dto"
	"github.com/glowmart/admin-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, e *model.Expense) error {
	query := `
        INSERT INTO expenses (
            id, user_id, category_id, subcategory_id, amount, tax_rate, tax_amount,
            total_amount, payment_method, expense_date, expense_time, description,
            created_at, updated_at
        )
        VALUES (
            :id, :user_id, :category_id, :subcategory_id, :amount, :tax_rate, :tax_amount,
            :total_amount, :payment_method, :expense_date, :expense_time, :description,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Expense, error) {
	var e model.Expense
	query := `
        SELECT e.*, c.name AS category_name, c.color AS category_color
        FROM expenses e
        LEFT JOIN expense_categories c ON c.id = e.category_id
        WHERE e.id = $1
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &e, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ExpenseFilters) ([]model.Expense, error) {
	var expenses []model.Expense

	conditions := []string{"e.user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.CategoryID != "" {
		conditions = append(conditions, "e.category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.PaymentMethod != "" {
		conditions = append(conditions, "e.payment_method = :payment_method")
		args["payment_method"] = f.PaymentMethod
	}
	if f.DateFrom != "" {
		conditions = append(conditions, "e.expense_date >= :date_from")
		args["date_from"] = f.DateFrom
	}
	if f.DateTo != "" {
		conditions = append(conditions, "e.expense_date <= :date_to")
		args["date_to"] = f.DateTo
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "e.description ILIKE :search")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	query := `
        SELECT e.*, c.name AS category_name, c.color AS category_color
        FROM expenses e
        LEFT JOIN expense_categories c ON c.id = e.category_id
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY e.expense_date DESC, e.created_at DESC
    `
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &expenses, args); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *PGRepository) Update(ctx context.Context, e *model.Expense) error {
	query := `
        UPDATE expenses
        SET category_id = :category_id,
            subcategory_id = :subcategory_id,
            amount = :amount,
            tax_rate = :tax_rate,
            tax_amount = :tax_amount,
            total_amount = :total_amount,
            payment_method = :payment_method,
            expense_date = :expense_date,
            expense_time = :expense_time,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM expenses WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.ExpenseCategory) error {
	query := `
        INSERT INTO expense_categories (id, user_id, name, color, created_at, updated_at)
        VALUES (:id, :user_id, :name, :color, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindCategories(ctx context.Context, userID string) ([]model.ExpenseCategory, error) {
	var categories []model.ExpenseCategory
	query := "SELECT * FROM expense_categories WHERE user_id = $1 ORDER BY name ASC"
	if err := r.DB.SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) DeleteCategory(ctx context.Context, userID, id string) error {
	// Expenses keep their row but lose the link; they surface as Uncategorized.
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE expenses SET category_id = NULL WHERE category_id = $1 AND user_id = $2", id, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM expense_categories WHERE id = $1 AND user_id = $2", id, userID); err != nil {
		return err
	}
	return tx.Commit()
}
