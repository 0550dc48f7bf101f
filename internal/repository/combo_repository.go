package repository

import (
	"context"
	"errors"
	"fmt"

	"combo-catalog/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrComboNotFound = errors.New("combo not found")
)

// ComboRepository defines the interface for combo and combo-product data access
type ComboRepository interface {
	Create(ctx context.Context, combo *domain.Combo) error
	List(ctx context.Context) ([]*domain.Combo, error)
	FindByID(ctx context.Context, id int64) (*domain.Combo, error)
	CreateAssociation(ctx context.Context, association *domain.ComboProduct) error
	// ListProducts returns the associations of a combo with their products loaded
	ListProducts(ctx context.Context, comboID int64) ([]*domain.ComboProduct, error)
}

type comboRepository struct {
	db *gorm.DB
}

// NewComboRepository creates a new instance of ComboRepository
func NewComboRepository(db *gorm.DB) ComboRepository {
	return &comboRepository{db: db}
}

// Create inserts a new combo and writes the assigned id and timestamps back
func (r *comboRepository) Create(ctx context.Context, combo *domain.Combo) error {
	row := toComboRow(combo)

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create combo: %w", err)
	}

	*combo = *toComboEntity(row)
	return nil
}

// List retrieves all combos ordered by id
func (r *comboRepository) List(ctx context.Context) ([]*domain.Combo, error) {
	var rows []comboRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list combos: %w", err)
	}

	combos := make([]*domain.Combo, 0, len(rows))
	for i := range rows {
		combos = append(combos, toComboEntity(&rows[i]))
	}

	return combos, nil
}

// FindByID retrieves a combo by ID
func (r *comboRepository) FindByID(ctx context.Context, id int64) (*domain.Combo, error) {
	var row comboRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComboNotFound
		}
		return nil, fmt.Errorf("failed to find combo by ID: %w", err)
	}

	return toComboEntity(&row), nil
}

// CreateAssociation links a product to a combo
func (r *comboRepository) CreateAssociation(ctx context.Context, association *domain.ComboProduct) error {
	row := &comboProductRow{
		ComboID:   association.ComboID,
		ProductID: association.ProductID,
	}

	if err := r.db.WithContext(ctx).Omit("Product").Create(row).Error; err != nil {
		return fmt.Errorf("failed to create combo product association: %w", err)
	}

	return nil
}

// ListProducts retrieves the associations of a combo ordered by product id
func (r *comboRepository) ListProducts(ctx context.Context, comboID int64) ([]*domain.ComboProduct, error) {
	var rows []comboProductRow
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("combo_id = ?", comboID).
		Order("product_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list combo products: %w", err)
	}

	associations := make([]*domain.ComboProduct, 0, len(rows))
	for i := range rows {
		associations = append(associations, toComboProductEntity(&rows[i]))
	}

	return associations, nil
}
