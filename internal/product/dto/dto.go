package dto

type ProductFilters struct {
	UserID      string `json:"user_id"`
	CategoryID  string `json:"category_id"`
	IsActive    *bool  `json:"is_active"`
	SearchQuery string `json:"search_query"`
	SortBy      string `json:"sort_by"`    // name, price, created_at
	SortOrder   string `json:"sort_order"` // asc, desc
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}
