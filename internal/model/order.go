package model

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order. Any valid status may be set
// from any non-terminal one; forward-only progression is not enforced.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Validate implements the enum contract used by pkg/validator.
func (s OrderStatus) Validate() error {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return nil
	default:
		return fmt.Errorf("invalid order status: %s", s)
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled
}

type Order struct {
	ID          int64       `json:"id"`
	CustomerID  *int64      `json:"customer_id"`
	OrderDate   time.Time   `json:"order_date"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Populated by queries that join customers.
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`

	// Items is populated only by the order-details query.
	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem is a line item. UnitPrice is the product price captured when the
// item was added; later catalog price changes never alter recorded items.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`

	// Populated by queries that join products.
	ProductName string `json:"product_name,omitempty"`
	Sku         string `json:"sku,omitempty"`
}
