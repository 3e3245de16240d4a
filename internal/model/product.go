package model

// Badge is the single marketing label attached to a product. The database
// stores it as five mutually-exclusive booleans; conversion happens at the
// repository boundary only.
type Badge string

const (
	BadgeNone       Badge = "none"
	BadgeHotItem    Badge = "hot_item"
	BadgeNewArrival Badge = "new_arrival"
	BadgeBestSeller Badge = "best_seller"
	BadgeFeatured   Badge = "featured"
	BadgeOnSale     Badge = "on_sale"
)

// BadgeFromFlags collapses the five-boolean wire format into one Badge.
// First set flag wins; rows written through this service never have two set.
func BadgeFromFlags(hotItem, newArrival, bestSeller, featured, onSale bool) Badge {
	switch {
	case hotItem:
		return BadgeHotItem
	case newArrival:
		return BadgeNewArrival
	case bestSeller:
		return BadgeBestSeller
	case featured:
		return BadgeFeatured
	case onSale:
		return BadgeOnSale
	default:
		return BadgeNone
	}
}

// Flags expands a Badge back into the five-boolean wire format.
func (b Badge) Flags() (hotItem, newArrival, bestSeller, featured, onSale bool) {
	switch b {
	case BadgeHotItem:
		hotItem = true
	case BadgeNewArrival:
		newArrival = true
	case BadgeBestSeller:
		bestSeller = true
	case BadgeFeatured:
		featured = true
	case BadgeOnSale:
		onSale = true
	}
	return
}

// Valid reports whether b is one of the known badge values.
func (b Badge) Valid() bool {
	switch b {
	case BadgeNone, BadgeHotItem, BadgeNewArrival, BadgeBestSeller, BadgeFeatured, BadgeOnSale:
		return true
	}
	return false
}

type Product struct {
	BaseModel
	UserID             string             `db:"user_id" json:"user_id"`
	CategoryID         *string            `db:"category_id" json:"category_id"` // Nullable
	Name               string             `db:"name" json:"name"`
	Description        *string            `db:"description" json:"description"`
	ImageURL           *string            `db:"image_url" json:"image_url"`
	BasePrice          float64            `db:"base_price" json:"base_price"`
	DiscountPercentage int                `db:"discount_percentage" json:"discount_percentage"`
	Badge              Badge              `db:"-" json:"badge"`
	FrameSize          *string            `db:"frame_size" json:"frame_size"`       // Eyewear, optional
	FrameMaterial      *string            `db:"frame_material" json:"frame_material"` // Eyewear, optional
	LensType           *string            `db:"lens_type" json:"lens_type"`         // Eyewear, optional
	SortOrder          int                `db:"sort_order" json:"sort_order"`
	IsActive           bool               `db:"is_active" json:"is_active"`
	Variants           []ProductVariant   `db:"-" json:"variants"`
	Images             []ProductImage     `db:"-" json:"images"`
	Attributes         []ProductAttribute `db:"-" json:"attributes"`
	Specifications     []ProductSpec      `db:"-" json:"specifications"`
	Category           *Category          `db:"-" json:"category,omitempty"` // Joined data
}

type ProductVariant struct {
	BaseModel
	ProductID     string  `db:"product_id" json:"product_id"`
	Name          string  `db:"name" json:"name"`
	Price         float64 `db:"price" json:"price"`
	SKU           string  `db:"sku" json:"sku"`
	StockQuantity int     `db:"stock_quantity" json:"stock_quantity"`
	SortOrder     int     `db:"sort_order" json:"sort_order"`
}

type ProductImage struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"product_id"`
	ImageURL  string `db:"image_url" json:"image_url"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

type ProductAttribute struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"product_id"`
	Name      string `db:"name" json:"name"`
	Value     string `db:"value" json:"value"`
}

type ProductSpec struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"product_id"`
	Label     string `db:"label" json:"label"`
	Value     string `db:"value" json:"value"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}
