package event

const (
	TopicOrderCreated    = "order.created"
	TopicOrderCancelled  = "order.cancelled"
	TopicProductLowStock = "product.low_stock"
)

type OrderCreatedEvent struct {
	OrderID    int64  `json:"order_id"`
	CustomerID *int64 `json:"customer_id"`
	Notes      string `json:"notes"`
}

type OrderCancelledEvent struct {
	OrderID        int64           `json:"order_id"`
	RestockedItems []RestockedItem `json:"restocked_items"`
}

type RestockedItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// ProductLowStockEvent is emitted when an order decrements a product across
// its reorder threshold.
type ProductLowStockEvent struct {
	ProductID   int64  `json:"product_id"`
	Sku         string `json:"sku"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}
