package usecase

import (
	productdomain "marketplace-backend/internal/product/domain"
	productdto "marketplace-backend/internal/product/dto"
)

type ProductUsecase interface {
	List() ([]productdomain.Product, error)
	Get(id string) (*productdomain.Product, error)
	Create(req *productdto.CreateProductRequest) (*productdomain.Product, error)
	Update(id string, req *productdto.UpdateProductRequest) (*productdomain.Product, error)
	Delete(id string) error
}
