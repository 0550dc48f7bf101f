package transport

import (
	"context"
	"strings"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/repository"
)

// Mock repositories for testing

type mockCategoryRepository struct {
	categories []*domain.Category
	err        error
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.err != nil {
		return m.err
	}
	category.ID = int64(len(m.categories) + 1)
	m.categories = append(m.categories, category)
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]*domain.Category{}, m.categories...), nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *mockCategoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.categories)), m.err
}

type mockProductRepository struct {
	products map[int64]*domain.Product
	nextID   int64
	err      error
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
	if m.err != nil {
		return 0, m.err
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
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
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
	products     *mockProductRepository
	nextID       int64
	err          error
}

func newMockComboRepository(products *mockProductRepository) *mockComboRepository {
	return &mockComboRepository{
		combos:       make(map[int64]*domain.Combo),
		associations: make(map[int64][]*domain.ComboProduct),
		products:     products,
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

// ListProducts hydrates associations from the product mock like a join would
func (m *mockComboRepository) ListProducts(ctx context.Context, comboID int64) ([]*domain.ComboProduct, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.ComboProduct
	for _, a := range m.associations[comboID] {
		hydrated := domain.NewComboProduct(a.ComboID, a.ProductID)
		hydrated.Product = m.products.products[a.ProductID]
		out = append(out, hydrated)
	}
	return out, nil
}
