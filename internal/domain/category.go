package domain

import "time"

// Category represents a product category
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategory builds a category that has not been persisted yet
func NewCategory(name string) *Category {
	return &Category{Name: name}
}
