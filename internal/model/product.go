package model

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Sku         string    `json:"sku"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CostPrice   float64   `json:"cost_price"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	CategoryID  *int64    `json:"category_id"`
	SupplierID  *int64    `json:"supplier_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// CategoryName is populated by queries that join categories.
	CategoryName *string `json:"category_name,omitempty"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}
