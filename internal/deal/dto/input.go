package dto

import "time"

type CreateDealInput struct {
	UserID        string    `json:"-"`
	ProductID     string    `json:"product_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	OriginalPrice float64   `json:"original_price" binding:"required"`
	DealPrice     float64   `json:"deal_price" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	TotalQuantity int       `json:"total_quantity" binding:"min=0"`
	IsFeatured    bool      `json:"is_featured"`
	BadgeText     string    `json:"badge_text"`
	BadgeColor    string    `json:"badge_color"`
}

type UpdateDealInput struct {
	ID            string    `json:"-"`
	UserID        string    `json:"-"`
	ProductID     string    `json:"product_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	OriginalPrice float64   `json:"original_price" binding:"required"`
	DealPrice     float64   `json:"deal_price" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	TotalQuantity int       `json:"total_quantity" binding:"min=0"`
	IsActive      bool      `json:"is_active"`
	IsFeatured    bool      `json:"is_featured"`
	BadgeText     string    `json:"badge_text"`
	BadgeColor    string    `json:"badge_color"`
}
