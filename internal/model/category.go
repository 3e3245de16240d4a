package model

type Menu struct {
	BaseModel
	UserID    string `db:"user_id" json:"user_id"`
	Name      string `db:"name" json:"name"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}

type Category struct {
	BaseModel
	UserID    string  `db:"user_id" json:"user_id"`
	MenuID    *string `db:"menu_id" json:"menu_id"` // Nullable
	Name      string  `db:"name" json:"name"`
	Subtitle  *string `db:"subtitle" json:"subtitle"`
	ImageURL  *string `db:"image_url" json:"image_url"`
	SortOrder int     `db:"sort_order" json:"sort_order"`
}
