package domain

import "time"

// Product represents a product in the catalog
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CategoryID  int64     `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProduct builds a product that has not been persisted yet
func NewProduct(name, description string, price float64, categoryID int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}
}

// ProductFilter narrows a product listing. Zero values match everything.
type ProductFilter struct {
	CategoryID *int64
	Name       string
}

// ProductUpdate carries the fields of a partial product update.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *int64
}

// IsEmpty reports whether the update changes nothing
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.CategoryID == nil
}
