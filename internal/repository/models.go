package repository

import (
	"time"

	"combo-catalog/internal/domain"
)

// Storage rows. They mirror the goose migrations and never leave this package.

type categoryRow struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (categoryRow) TableName() string { return "categories" }

type productRow struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	CategoryID  int64   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productRow) TableName() string { return "products" }

type comboRow struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Discount  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (comboRow) TableName() string { return "combos" }

type comboProductRow struct {
	ComboID   int64       `gorm:"primaryKey;autoIncrement:false"`
	ProductID int64       `gorm:"primaryKey;autoIncrement:false"`
	Product   *productRow `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (comboProductRow) TableName() string { return "combo_products" }

func toCategoryEntity(row *categoryRow) *domain.Category {
	return &domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toCategoryRow(c *domain.Category) *categoryRow {
	return &categoryRow{ID: c.ID, Name: c.Name}
}

func toProductEntity(row *productRow) *domain.Product {
	return &domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		CategoryID:  row.CategoryID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toProductRow(p *domain.Product) *productRow {
	return &productRow{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
}

func toComboEntity(row *comboRow) *domain.Combo {
	return &domain.Combo{
		ID:        row.ID,
		Name:      row.Name,
		Discount:  row.Discount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toComboRow(c *domain.Combo) *comboRow {
	return &comboRow{ID: c.ID, Name: c.Name, Discount: c.Discount}
}

func toComboProductEntity(row *comboProductRow) *domain.ComboProduct {
	cp := &domain.ComboProduct{
		ComboID:   row.ComboID,
		ProductID: row.ProductID,
	}
	if row.Product != nil {
		cp.Product = toProductEntity(row.Product)
	}
	return cp
}

// productUpdateColumns maps the set fields of a partial update to column values
func productUpdateColumns(u domain.ProductUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if u.Name != nil {
		columns["name"] = *u.Name
	}
	if u.Description != nil {
		columns["description"] = *u.Description
	}
	if u.Price != nil {
		columns["price"] = *u.Price
	}
	if u.CategoryID != nil {
		columns["category_id"] = *u.CategoryID
	}
	return columns
}
