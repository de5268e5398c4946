package usecase

import (
	"errors"

	productdomain "marketplace-backend/internal/product/domain"
	productdto "marketplace-backend/internal/product/dto"
	"marketplace-backend/internal/product/repository"
)

var (
	// ErrProductNotFound signals an unknown product id.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidCategory signals a category outside the known set.
	ErrInvalidCategory = errors.New("invalid product category")
)

// productUsecase implements ProductUsecase interface
type productUsecase struct {
	productRepo repository.ProductRepository
}

// NewProductUsecase creates a new instance of productUsecase
func NewProductUsecase(productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
	}
}

func (u *productUsecase) List() ([]productdomain.Product, error) {
	return u.productRepo.FindAll()
}

func (u *productUsecase) Get(id string) (*productdomain.Product, error) {
	product, err := u.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (u *productUsecase) Create(req *productdto.CreateProductRequest) (*productdomain.Product, error) {
	category := productdomain.Category(req.Category)
	if !productdomain.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	inStock := 0
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &productdomain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		Image:       req.Image,
		InStock:     inStock,
		PlaceID:     req.PlaceID,
	}

	if err := u.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update merges the non-nil request fields over the stored record. A nil
// field leaves the stored value untouched, so a zero stock count is an
// explicit update, not an omission.
func (u *productUsecase) Update(id string, req *productdto.UpdateProductRequest) (*productdomain.Product, error) {
	product, err := u.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		category := productdomain.Category(*req.Category)
		if !productdomain.ValidCategory(category) {
			return nil, ErrInvalidCategory
		}
		product.Category = category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.PlaceID != nil {
		product.PlaceID = *req.PlaceID
	}

	if err := u.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (u *productUsecase) Delete(id string) error {
	product, err := u.productRepo.FindByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return u.productRepo.Delete(id)
}
