package dto

type ExpenseFilters struct {
	UserID        string `json:"user_id"`
	CategoryID    string `json:"category_id"`
	PaymentMethod string `json:"payment_method"`
	DateFrom      string `json:"date_from"` // inclusive, YYYY-MM-DD
	DateTo        string `json:"date_to"`   // inclusive, YYYY-MM-DD
	SearchQuery   string `json:"search_query"`
	Page          int    `json:"page"`
	PageSize      int    `json:"page_size"`
}
