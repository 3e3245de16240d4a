package dto

import "github.com/glowmart/admin-service/internal/model"

type DealFilters struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	IsActive  *bool  `json:"is_active"`
	Featured  *bool  `json:"featured"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
}

// DealView is a deal plus the derived presentation fields evaluated at read
// time. Status and TimeRemaining are never stored.
type DealView struct {
	model.Deal
	Status        string `json:"status"`
	TimeRemaining string `json:"time_remaining"`
}
