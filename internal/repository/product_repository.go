package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"combo-catalog/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	// Update applies the set fields of update to the product and returns the stored row
	Update(ctx context.Context, id int64, update domain.ProductUpdate) (*domain.Product, error)
	// Delete removes the product and returns the number of rows affected
	Delete(ctx context.Context, id int64) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product and writes the assigned id and timestamps back
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	row := toProductRow(product)

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	*product = *toProductEntity(row)
	return nil
}

// Update writes only the columns present in update
func (r *productRepository) Update(ctx context.Context, id int64, update domain.ProductUpdate) (*domain.Product, error) {
	if !update.IsEmpty() {
		result := r.db.WithContext(ctx).Model(&productRow{ID: id}).Updates(productUpdateColumns(update))
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update product: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrProductNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// Delete removes a product by ID
func (r *productRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&productRow{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete product: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// FindByID retrieves a product by ID
func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return toProductEntity(&row), nil
}

// List retrieves products matching the filter ordered by id
func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	query := r.db.WithContext(ctx).Model(&productRow{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	return r.find(query, "failed to list products")
}

// ListByCategory retrieves the products of one category ordered by id
func (r *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	query := r.db.WithContext(ctx).Where("category_id = ?", categoryID)
	return r.find(query, "failed to list products by category")
}

func (r *productRepository) find(query *gorm.DB, failure string) ([]*domain.Product, error) {
	var rows []productRow
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", failure, err)
	}

	products := make([]*domain.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductEntity(&rows[i]))
	}

	return products, nil
}
