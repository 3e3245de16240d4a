package dto

type CreateCategoryInput struct {
	UserID    string  `json:"-"`
	MenuID    *string `json:"menu_id"`
	Name      string  `json:"name" binding:"required"`
	Subtitle  string  `json:"subtitle"`
	ImageURL  string  `json:"image_url"`
	SortOrder int     `json:"sort_order"`
}

type UpdateCategoryInput struct {
	ID        string  `json:"-"`
	UserID    string  `json:"-"`
	MenuID    *string `json:"menu_id"`
	Name      string  `json:"name" binding:"required"`
	Subtitle  string  `json:"subtitle"`
	ImageURL  string  `json:"image_url"`
	SortOrder int     `json:"sort_order"`
}

type ReorderInput struct {
	UserID string  `json:"-"`
	MenuID *string `json:"menu_id"`
	From   int     `json:"from"`
	To     int     `json:"to"`
}

type CreateMenuInput struct {
	UserID    string `json:"-"`
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}
