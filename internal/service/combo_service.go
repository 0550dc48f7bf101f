package service

import (
	"context"
	"errors"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/repository"
)

// ComboService defines the interface for combo use cases
type ComboService interface {
	GetAll(ctx context.Context) ([]*domain.Combo, error)
	// GetComboByID returns nil without error when the combo does not exist
	GetComboByID(ctx context.Context, id int64) (*domain.Combo, error)
	CreateCombo(ctx context.Context, combo *domain.Combo) (*domain.Combo, error)
	CreateComboProductAssociation(ctx context.Context, association *domain.ComboProduct) (*domain.ComboProduct, error)
	// GetComboProducts returns an empty slice for a combo without products
	// and ErrComboNotFound for an unknown combo
	GetComboProducts(ctx context.Context, comboID int64) ([]*domain.ComboProduct, error)
}

type comboService struct {
	comboRepo repository.ComboRepository
}

// NewComboService creates a new instance of ComboService
func NewComboService(comboRepo repository.ComboRepository) ComboService {
	return &comboService{comboRepo: comboRepo}
}

func (s *comboService) GetAll(ctx context.Context) ([]*domain.Combo, error) {
	return s.comboRepo.List(ctx)
}

func (s *comboService) GetComboByID(ctx context.Context, id int64) (*domain.Combo, error) {
	combo, err := s.comboRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrComboNotFound) {
		return nil, nil
	}
	return combo, err
}

func (s *comboService) CreateCombo(ctx context.Context, combo *domain.Combo) (*domain.Combo, error) {
	if err := s.comboRepo.Create(ctx, combo); err != nil {
		return nil, err
	}
	return combo, nil
}

func (s *comboService) CreateComboProductAssociation(ctx context.Context, association *domain.ComboProduct) (*domain.ComboProduct, error) {
	if err := s.comboRepo.CreateAssociation(ctx, association); err != nil {
		return nil, err
	}
	return domain.NewComboProduct(association.ComboID, association.ProductID), nil
}

func (s *comboService) GetComboProducts(ctx context.Context, comboID int64) ([]*domain.ComboProduct, error) {
	combo, err := s.GetComboByID(ctx, comboID)
	if err != nil {
		return nil, err
	}
	if combo == nil {
		return nil, ErrComboNotFound
	}

	associations, err := s.comboRepo.ListProducts(ctx, comboID)
	if err != nil {
		return nil, err
	}
	if associations == nil {
		return []*domain.ComboProduct{}, nil
	}

	return associations, nil
}
