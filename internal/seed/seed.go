// Package seed loads a small sample catalog into an empty database.
package seed

import (
	"context"
	"fmt"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/service"

	"go.uber.org/zap"
)

// Counter reports how many categories are stored
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Catalog groups the services the seed writes through
type Catalog struct {
	Categories service.CategoryService
	Products   service.ProductService
	Combos     service.ComboService
}

type sampleProduct struct {
	name        string
	description string
	price       float64
	category    string
}

var sampleCategories = []string{"Pizzas", "Drinks", "Desserts"}

var sampleProducts = []sampleProduct{
	{"Margherita", "Tomato, mozzarella and basil", 9.5, "Pizzas"},
	{"Pepperoni", "Tomato, mozzarella and pepperoni", 11, "Pizzas"},
	{"Cola", "330ml can", 2.5, "Drinks"},
	{"Sparkling Water", "500ml bottle", 1.8, "Drinks"},
	{"Tiramisu", "Coffee flavoured layered dessert", 5.5, "Desserts"},
}

type sampleCombo struct {
	name     string
	discount float64
	products []string
}

var sampleCombos = []sampleCombo{
	{"Lunch Deal", 10, []string{"Margherita", "Cola"}},
	{"Family Night", 15, []string{"Margherita", "Pepperoni", "Sparkling Water", "Tiramisu"}},
}

// Run writes the sample catalog when no category exists yet. It reports
// whether anything was written.
func Run(ctx context.Context, counter Counter, catalog Catalog, logger *zap.Logger) (bool, error) {
	count, err := counter.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		logger.Info("Catalog already has data, skipping seed", zap.Int64("categories", count))
		return false, nil
	}

	logger.Info("Catalog is empty, loading sample data")

	categoryIDs := make(map[string]int64, len(sampleCategories))
	for _, name := range sampleCategories {
		category, err := catalog.Categories.CreateCategory(ctx, domain.NewCategory(name))
		if err != nil {
			return false, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		categoryIDs[name] = category.ID
	}

	productIDs := make(map[string]int64, len(sampleProducts))
	for _, p := range sampleProducts {
		product, err := catalog.Products.CreateProduct(ctx,
			domain.NewProduct(p.name, p.description, p.price, categoryIDs[p.category]))
		if err != nil {
			return false, fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
		productIDs[p.name] = product.ID
	}

	for _, c := range sampleCombos {
		combo, err := catalog.Combos.CreateCombo(ctx, domain.NewCombo(c.name, c.discount))
		if err != nil {
			return false, fmt.Errorf("failed to seed combo %q: %w", c.name, err)
		}

		for _, name := range c.products {
			association := domain.NewComboProduct(combo.ID, productIDs[name])
			if _, err := catalog.Combos.CreateComboProductAssociation(ctx, association); err != nil {
				return false, fmt.Errorf("failed to add %q to combo %q: %w", name, c.name, err)
			}
		}
	}

	logger.Info("Sample catalog loaded",
		zap.Int("categories", len(sampleCategories)),
		zap.Int("products", len(sampleProducts)),
		zap.Int("combos", len(sampleCombos)),
	)
	return true, nil
}
