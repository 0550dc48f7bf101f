package service

import (
	"context"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/repository"
)

// Mock repositories for testing

type mockCategoryRepository struct {
	categories map[int64]*domain.Category
	nextID     int64
	err        error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[int64]*domain.Category)}
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	category.ID = m.nextID
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	categories := []*domain.Category{}
	for id := int64(1); id <= m.nextID; id++ {
		if c, ok := m.categories[id]; ok {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

func (m *mockCategoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.categories)), m.err
}

type mockProductRepository struct {
	products    map[int64]*domain.Product
	nextID      int64
	err         error
	lastFilter  domain.ProductFilter
	lastUpdate  *domain.ProductUpdate
	updateCalls int
	deleteCalls int
	// deleteResult overrides the affected row count when set
	deleteResult *int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int64]*domain.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	product.ID = m.nextID
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, id int64, update domain.ProductUpdate) (*domain.Product, error) {
	m.updateCalls++
	m.lastUpdate = &update
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.CategoryID != nil {
		product.CategoryID = *update.CategoryID
	}
	return product, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	m.deleteCalls++
	if m.err != nil {
		return 0, m.err
	}
	if m.deleteResult != nil {
		return *m.deleteResult, nil
	}
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	products := []*domain.Product{}
	for id := int64(1); id <= m.nextID; id++ {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (m *mockProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	return m.List(ctx, domain.ProductFilter{CategoryID: &categoryID})
}

type mockComboRepository struct {
	combos       map[int64]*domain.Combo
	associations map[int64][]*domain.ComboProduct
	nextID       int64
	err          error
	// nilProducts makes ListProducts answer with a nil slice
	nilProducts bool
}

func newMockComboRepository() *mockComboRepository {
	return &mockComboRepository{
		combos:       make(map[int64]*domain.Combo),
		associations: make(map[int64][]*domain.ComboProduct),
	}
}

func (m *mockComboRepository) Create(ctx context.Context, combo *domain.Combo) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	combo.ID = m.nextID
	m.combos[combo.ID] = combo
	return nil
}

func (m *mockComboRepository) List(ctx context.Context) ([]*domain.Combo, error) {
	if m.err != nil {
		return nil, m.err
	}
	combos := []*domain.Combo{}
	for id := int64(1); id <= m.nextID; id++ {
		if c, ok := m.combos[id]; ok {
			combos = append(combos, c)
		}
	}
	return combos, nil
}

func (m *mockComboRepository) FindByID(ctx context.Context, id int64) (*domain.Combo, error) {
	if m.err != nil {
		return nil, m.err
	}
	combo, ok := m.combos[id]
	if !ok {
		return nil, repository.ErrComboNotFound
	}
	return combo, nil
}

func (m *mockComboRepository) CreateAssociation(ctx context.Context, association *domain.ComboProduct) error {
	if m.err != nil {
		return m.err
	}
	m.associations[association.ComboID] = append(m.associations[association.ComboID], association)
	return nil
}

func (m *mockComboRepository) ListProducts(ctx context.Context, comboID int64) ([]*domain.ComboProduct, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.nilProducts {
		return nil, nil
	}
	return append([]*domain.ComboProduct{}, m.associations[comboID]...), nil
}
