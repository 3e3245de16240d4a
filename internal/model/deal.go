package model

import "time"

type Deal struct {
	BaseModel
	UserID             string    `db:"user_id" json:"user_id"`
	ProductID          string    `db:"product_id" json:"product_id"`
	Title              string    `db:"title" json:"title"`
	Description        *string   `db:"description" json:"description"`
	OriginalPrice      float64   `db:"original_price" json:"original_price"`
	DealPrice          float64   `db:"deal_price" json:"deal_price"`
	DiscountPercentage int       `db:"discount_percentage" json:"discount_percentage"` // Server-computed at write time
	StartTime          time.Time `db:"start_time" json:"start_time"`
	EndTime            time.Time `db:"end_time" json:"end_time"`
	TotalQuantity      int       `db:"total_quantity" json:"total_quantity"`
	SoldQuantity       int       `db:"sold_quantity" json:"sold_quantity"`
	RemainingQuantity  int       `db:"remaining_quantity" json:"remaining_quantity"`
	IsActive           bool      `db:"is_active" json:"is_active"`
	IsFeatured         bool      `db:"is_featured" json:"is_featured"`
	BadgeText          *string   `db:"badge_text" json:"badge_text"`
	BadgeColor         *string   `db:"badge_color" json:"badge_color"`
}
