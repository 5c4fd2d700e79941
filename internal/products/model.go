package products

import "time"

// Listing types
const (
	TypeSell = "sell"
	TypeRent = "rent"
)

// Product is a physical item listed for sale or rent.
type Product struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Price        float64    `json:"price"`
	Category     string     `json:"category"`
	Type         string     `json:"type"`
	Condition    *string    `json:"condition"`
	DurationDays *int       `json:"duration_days"`
	ImageURL     *string    `json:"image_url"`
	IsAvailable  bool       `json:"is_available"`
	RentedAt     *time.Time `json:"rented_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CategoryOption pairs a stored category value with its display label.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories lists the product categories shown in browse filters.
// "all" is a filter-only value and never stored on a row.
var Categories = []CategoryOption{
	{Value: "all", Label: "All Categories"},
	{Value: "stationary", Label: "Stationary"},
	{Value: "electronics", Label: "Electronics"},
	{Value: "furniture", Label: "Furniture"},
	{Value: "lab_equipment", Label: "Lab Equipment"},
}

// ConditionLabels maps stored condition values to display labels.
var ConditionLabels = map[string]string{
	"like_new": "Like New",
	"good":     "Good",
	"fair":     "Fair",
}
