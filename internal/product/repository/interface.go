package repository

import productdomain "marketplace-backend/internal/product/domain"

// ProductRepository persists product records. Lookups return (nil, nil) when
// no record matches.
type ProductRepository interface {
	Create(product *productdomain.Product) error
	FindAll() ([]productdomain.Product, error)
	FindByID(id string) (*productdomain.Product, error)
	Update(product *productdomain.Product) error
	Delete(id string) error
	Count() (int64, error)
	CountLowStock(threshold int) (int64, error)
}
