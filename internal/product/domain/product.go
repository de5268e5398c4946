package domain

import "time"

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFood        Category = "food"
	CategoryClothing    Category = "clothing"
	CategoryRent        Category = "rent"
	CategoryTransport   Category = "transport"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryElectronics, CategoryFood, CategoryClothing, CategoryRent, CategoryTransport:
		return true
	default:
		return false
	}
}

// LowStockThreshold is the stock count below which a product is counted as
// low stock on the admin dashboard.
const LowStockThreshold = 10

type Product struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Image       string    `json:"image"`
	InStock     int       `json:"inStock"`
	PlaceID     string    `json:"placeId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
