package event

import (
	"context"
	"log/slog"
)

func (s *Service) handleOrderCreated(ctx context.Context, ev OrderCreatedEvent) error {
	s.logger.InfoContext(ctx, "order created",
		slog.Int64("order_id", ev.OrderID),
		slog.Any("customer_id", ev.CustomerID))
	return nil
}

func (s *Service) handleOrderCancelled(ctx context.Context, ev OrderCancelledEvent) error {
	s.logger.InfoContext(ctx, "order cancelled, stock restored",
		slog.Int64("order_id", ev.OrderID),
		slog.Int("restocked_items", len(ev.RestockedItems)))
	return nil
}

// handleProductLowStock surfaces a reorder alert. Downstream consumers can
// replace this with a purchase-order integration.
func (s *Service) handleProductLowStock(ctx context.Context, ev ProductLowStockEvent) error {
	s.logger.WarnContext(ctx, "product low on stock, reorder needed",
		slog.Int64("product_id", ev.ProductID),
		slog.String("sku", ev.Sku),
		slog.Int("quantity", ev.Quantity),
		slog.Int("min_quantity", ev.MinQuantity))
	return nil
}
