package service

import (
	"context"
	"errors"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/repository"
)

// ProductService defines the interface for product use cases
type ProductService interface {
	GetAll(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error)
	// GetProductByID returns nil without error when the product does not exist
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, update domain.ProductUpdate) (*domain.Product, error)
	// DeleteProduct returns the number of rows removed
	DeleteProduct(ctx context.Context, id int64) (int64, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAll(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *productService) GetProductsByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	return s.productRepo.ListByCategory(ctx, categoryID)
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, nil
	}
	return product, err
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct checks the product exists before forwarding the update unchanged
func (s *productService) UpdateProduct(ctx context.Context, id int64, update domain.ProductUpdate) (*domain.Product, error) {
	existing, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	product, err := s.productRepo.Update(ctx, id, update)
	if errors.Is(err, repository.ErrProductNotFound) {
		// removed between the lookup and the write
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	if id == 0 {
		return 0, ErrMissingParameter
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrProductNotFound
	}

	return deleted, nil
}
