package model

import "time"

type Banner struct {
	BaseModel
	UserID    string  `db:"user_id" json:"user_id"`
	Title     string  `db:"title" json:"title"`
	Subtitle  *string `db:"subtitle" json:"subtitle"`
	ImageURL  string  `db:"image_url" json:"image_url"`
	LinkURL   *string `db:"link_url" json:"link_url"`
	Position  string  `db:"position" json:"position"`
	SortOrder int     `db:"sort_order" json:"sort_order"`
	IsActive  bool    `db:"is_active" json:"is_active"`
}

type BlogPost struct {
	BaseModel
	UserID        string     `db:"user_id" json:"user_id"`
	Title         string     `db:"title" json:"title"`
	Slug          string     `db:"slug" json:"slug"`
	Excerpt       *string    `db:"excerpt" json:"excerpt"`
	Content       string     `db:"content" json:"content"`
	CoverImageURL *string    `db:"cover_image_url" json:"cover_image_url"`
	Tags          *string    `db:"tags" json:"tags"` // Comma-separated
	IsPublished   bool       `db:"is_published" json:"is_published"`
	PublishedAt   *time.Time `db:"published_at" json:"published_at"` // Set together with IsPublished
}
