package dto

type SaveBannerInput struct {
	ID        string  `json:"-"`
	UserID    string  `json:"-"`
	Title     string  `json:"title" binding:"required"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  string  `json:"image_url" binding:"required"`
	LinkURL   *string `json:"link_url"`
	Position  string  `json:"position"`
	SortOrder int     `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

type SavePostInput struct {
	ID            string  `json:"-"`
	UserID        string  `json:"-"`
	Title         string  `json:"title" binding:"required"`
	Slug          string  `json:"slug"`
	Excerpt       *string `json:"excerpt"`
	Content       string  `json:"content" binding:"required"`
	CoverImageURL *string `json:"cover_image_url"`
	Tags          *string `json:"tags"`
}
