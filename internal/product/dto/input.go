package dto

type VariantInput struct {
	ID            string  `json:"id"` // Empty for new variants
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price"`
	SKU           string  `json:"sku"`
	StockQuantity int     `json:"stock_quantity"`
}

type ImageInput struct {
	ImageURL string `json:"image_url" binding:"required"`
}

type AttributeInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type SpecInput struct {
	Label string `json:"label" binding:"required"`
	Value string `json:"value"`
}

// SaveProductInput carries the full form state for both create and edit; on
// edit the child collections are reconciled against storage.
type SaveProductInput struct {
	ID                 string           `json:"-"`
	UserID             string           `json:"-"`
	CategoryID         string           `json:"category_id"`
	Name               string           `json:"name" binding:"required"`
	Description        string           `json:"description"`
	ImageURL           string           `json:"image_url"`
	BasePrice          float64          `json:"base_price"`
	DiscountPercentage int              `json:"discount_percentage"`
	Badge              string           `json:"badge"`
	FrameSize          string           `json:"frame_size"`
	FrameMaterial      string           `json:"frame_material"`
	LensType           string           `json:"lens_type"`
	SortOrder          int              `json:"sort_order"`
	IsActive           bool             `json:"is_active"`
	Variants           []VariantInput   `json:"variants"`
	Images             []ImageInput     `json:"images"`
	Attributes         []AttributeInput `json:"attributes"`
	Specifications     []SpecInput      `json:"specifications"`
}
