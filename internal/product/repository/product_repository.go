package repository

import (
	"errors"
	"time"

	productdomain "marketplace-backend/internal/product/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRepository implements ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of productRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) Create(product *productdomain.Product) error {
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	return r.db.Create(product).Error
}

func (r *productRepository) FindAll() ([]productdomain.Product, error) {
	var products []productdomain.Product
	if err := r.db.Order("created_at").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(id string) (*productdomain.Product, error) {
	var product productdomain.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *productdomain.Product) error {
	product.UpdatedAt = time.Now()
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&productdomain.Product{}).Error
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&productdomain.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) CountLowStock(threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&productdomain.Product{}).
		Where("in_stock < ?", threshold).
		Count(&count).Error
	return count, err
}
