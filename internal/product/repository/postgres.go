package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glowmart/admin-service/internal/model"
	"github.com/glowmart/admin-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// productRow is the wire shape of the products table: the marketing badge is
// stored as five mutually-exclusive booleans. Conversion to the Badge enum
// happens here and nowhere else.
type productRow struct {
	model.Product
	IsHotItem    bool `db:"is_hot_item"`
	IsNewArrival bool `db:"is_new_arrival"`
	IsBestSeller bool `db:"is_best_seller"`
	IsFeatured   bool `db:"is_featured"`
	IsOnSale     bool `db:"is_on_sale"`
}

func toRow(p *model.Product) *productRow {
	row := &productRow{Product: *p}
	row.IsHotItem, row.IsNewArrival, row.IsBestSeller, row.IsFeatured, row.IsOnSale = p.Badge.Flags()
	return row
}

func fromRow(row *productRow) *model.Product {
	p := row.Product
	p.Badge = model.BadgeFromFlags(row.IsHotItem, row.IsNewArrival, row.IsBestSeller, row.IsFeatured, row.IsOnSale)
	return &p
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, user_id, category_id, name, description, image_url, base_price,
            discount_percentage, is_hot_item, is_new_arrival, is_best_seller,
            is_featured, is_on_sale, frame_size, frame_material, lens_type,
            sort_order, is_active, created_at, updated_at
        )
        VALUES (
            :id, :user_id, :category_id, :name, :description, :image_url, :base_price,
            :discount_percentage, :is_hot_item, :is_new_arrival, :is_best_seller,
            :is_featured, :is_on_sale, :frame_size, :frame_material, :lens_type,
            :sort_order, :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, toRow(p))
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var row productRow
	err := r.DB.GetContext(ctx, &row, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p := fromRow(&row)

	variants, err := r.FindVariants(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants

	if err := r.DB.SelectContext(ctx, &p.Images,
		`SELECT * FROM product_images WHERE product_id = $1 ORDER BY sort_order ASC`, p.ID); err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &p.Attributes,
		`SELECT * FROM product_attributes WHERE product_id = $1`, p.ID); err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &p.Specifications,
		`SELECT * FROM product_specs WHERE product_id = $1 ORDER BY sort_order ASC`, p.ID); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var rows []productRow
	var count int

	conditions := []string{"user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	countQuery := "SELECT count(*) FROM products" + whereClause
	countRows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer countRows.Close()
	if countRows.Next() {
		countRows.Scan(&count)
	}

	orderBy := "sort_order ASC, created_at DESC"
	if f.SortBy != "" {
		// Whitelisted to keep user input out of the ORDER BY clause.
		switch f.SortBy {
		case "name":
			orderBy = "name"
		case "price":
			orderBy = "base_price"
		case "created_at":
			orderBy = "created_at"
		default:
			orderBy = "sort_order"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy)
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, 0, err
	}

	products := make([]model.Product, len(rows))
	for i := range rows {
		products[i] = *fromRow(&rows[i])
	}
	return products, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET category_id = :category_id,
            name = :name,
            description = :description,
            image_url = :image_url,
            base_price = :base_price,
            discount_percentage = :discount_percentage,
            is_hot_item = :is_hot_item,
            is_new_arrival = :is_new_arrival,
            is_best_seller = :is_best_seller,
            is_featured = :is_featured,
            is_on_sale = :is_on_sale,
            frame_size = :frame_size,
            frame_material = :frame_material,
            lens_type = :lens_type,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, toRow(p))
	return err
}

// Delete removes the product and its children in one transaction, children
// first; the product row must never be removed while child rows remain.
func (r *PGRepository) Delete(ctx context.Context, userID, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"product_variants", "product_images", "product_attributes", "product_specs"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE product_id = $1", table), id); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM products WHERE id = $1 AND user_id = $2", id, userID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindVariants(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	query := `SELECT * FROM product_variants WHERE product_id = $1 ORDER BY sort_order ASC`
	if err := r.DB.SelectContext(ctx, &variants, query, productID); err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *PGRepository) InsertVariant(ctx context.Context, v *model.ProductVariant) error {
	query := `
        INSERT INTO product_variants (id, product_id, name, price, sku, stock_quantity, sort_order, created_at, updated_at)
        VALUES (:id, :product_id, :name, :price, :sku, :stock_quantity, :sort_order, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) UpdateVariant(ctx context.Context, v *model.ProductVariant) error {
	query := `
        UPDATE product_variants
        SET name = :name,
            price = :price,
            sku = :sku,
            stock_quantity = :stock_quantity,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) DeleteVariant(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM product_variants WHERE id = $1", id)
	return err
}

func (r *PGRepository) ReplaceImages(ctx context.Context, productID string, images []model.ProductImage) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM product_images WHERE product_id = $1", productID); err != nil {
		return err
	}
	for i := range images {
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO product_images (id, product_id, image_url, sort_order)
            VALUES (:id, :product_id, :image_url, :sort_order)
        `, images[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PGRepository) ReplaceAttributes(ctx context.Context, productID string, attrs []model.ProductAttribute) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM product_attributes WHERE product_id = $1", productID); err != nil {
		return err
	}
	for i := range attrs {
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO product_attributes (id, product_id, name, value)
            VALUES (:id, :product_id, :name, :value)
        `, attrs[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PGRepository) ReplaceSpecs(ctx context.Context, productID string, specs []model.ProductSpec) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM product_specs WHERE product_id = $1", productID); err != nil {
		return err
	}
	for i := range specs {
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO product_specs (id, product_id, label, value, sort_order)
            VALUES (:id, :product_id, :label, :value, :sort_order)
        `, specs[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}
