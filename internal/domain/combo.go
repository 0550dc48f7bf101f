package domain

import "time"

// Combo is a named bundle of products sold with a discount
type Combo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Discount  float64   `json:"discount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewCombo(name string, discount float64) *Combo {
	return &Combo{Name: name, Discount: discount}
}

// ComboProduct links a product to a combo. Product is only populated
// when the association was read together with its product row.
type ComboProduct struct {
	ComboID   int64    `json:"comboId"`
	ProductID int64    `json:"productId"`
	Product   *Product `json:"product"`
}

func NewComboProduct(comboID, productID int64) *ComboProduct {
	return &ComboProduct{ComboID: comboID, ProductID: productID}
}
