package dto

type BannerFilters struct {
	UserID   string `json:"user_id"`
	Position string `json:"position"`
	IsActive *bool  `json:"is_active"`
}

type PostFilters struct {
	UserID      string `json:"user_id"`
	IsPublished *bool  `json:"is_published"`
	Tag         string `json:"tag"`
	SearchQuery string `json:"search_query"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}
