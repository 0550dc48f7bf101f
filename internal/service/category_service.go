package service

import (
	"context"
	"errors"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/repository"
)

// CategoryService defines the interface for category use cases
type CategoryService interface {
	GetAll(ctx context.Context) ([]*domain.Category, error)
	// GetCategoryByID returns nil without error when the category does not exist
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, nil
	}
	return category, err
}

func (s *categoryService) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
