package dto

type CategoryFilters struct {
	UserID string
	MenuID *string // Nil means ignore, empty string means menu-less categories
}
