package dto

type SupplierFilters struct {
	UserID      string `json:"user_id"`
	IsActive    *bool  `json:"is_active"`
	MinRating   *int   `json:"min_rating"`
	SearchQuery string `json:"search_query"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}
