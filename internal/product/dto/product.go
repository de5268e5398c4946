package dto

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	InStock     *int    `json:"inStock" binding:"omitempty,min=0"`
	PlaceID     string  `json:"placeId"`
}

// UpdateProductRequest merges over the stored record. Pointer fields so an
// absent field and an explicit zero ("inStock": 0) are distinguishable.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	InStock     *int     `json:"inStock" binding:"omitempty,min=0"`
	PlaceID     *string  `json:"placeId"`
}
