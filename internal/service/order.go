package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/event"
	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/storage/db"
	"github.com/zionbm/zion/pkg/outbox"
	"github.com/zionbm/zion/pkg/ptr"
)

type CreateOrderParams struct {
	CustomerID *int64
	Notes      string
}

// OrderService is the order fulfillment engine. Every mutating operation runs
// as a single unit of work: line-item insert, stock decrement and total
// recompute commit together or not at all, and cancellation restores all
// stock atomically with the status change.
type OrderService interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (int64, error)
	AddItem(ctx context.Context, orderID, productID int64, quantity int) error
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	Cancel(ctx context.Context, orderID int64) error
	GetOrderDetails(ctx context.Context, orderID int64) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListOrdersByStatus(ctx context.Context, status string) ([]model.Order, error)
}

type orderService struct {
	db            db.DB
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewOrderService(
	db db.DB,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) OrderService {
	return &orderService{
		db:            db,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, params CreateOrderParams) (int64, error) {
	var orderID int64

	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		id, err := s.orderRepo.WithDB(tx).Create(ctx, repository.CreateOrderParams{
			CustomerID: params.CustomerID,
			Notes:      params.Notes,
		})
		if err != nil {
			return fmt.Errorf("order repository create: %w", err)
		}
		orderID = id

		return s.emit(ctx, tx, event.TopicOrderCreated, orderID, event.OrderCreatedEvent{
			OrderID:    orderID,
			CustomerID: params.CustomerID,
			Notes:      params.Notes,
		})
	}); err != nil {
		return 0, fmt.Errorf("db with tx: %w", err)
	}

	return orderID, nil
}

func (s *orderService) AddItem(ctx context.Context, orderID, productID int64, quantity int) error {
	if quantity < 1 {
		return apperr.ValidationErr.WrapParent(fmt.Errorf("quantity must be positive, got %d", quantity))
	}

	return s.db.WithTx(ctx, func(tx db.DB) error {
		order, err := s.orderRepo.WithDB(tx).Get(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return apperr.ErrOrderAlreadyCancelled
		}

		product, err := s.productRepo.WithDB(tx).Get(ctx, productID)
		if err != nil {
			return err
		}
		if quantity > product.Quantity {
			return apperr.ErrInsufficientStock
		}

		// Snapshot the sale price now; later catalog changes must not
		// rewrite recorded totals.
		if _, err := s.orderRepo.WithDB(tx).CreateItem(ctx, repository.CreateOrderItemParams{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}); err != nil {
			return fmt.Errorf("order repository create item: %w", err)
		}

		if err := s.productRepo.WithDB(tx).AdjustStock(ctx, productID, -quantity); err != nil {
			return fmt.Errorf("product repository adjust stock: %w", err)
		}

		if err := s.orderRepo.WithDB(tx).RecomputeTotal(ctx, orderID); err != nil {
			return fmt.Errorf("order repository recompute total: %w", err)
		}

		remaining := product.Quantity - quantity
		if remaining <= product.MinQuantity && product.Quantity > product.MinQuantity {
			if err := s.emit(ctx, tx, event.TopicProductLowStock, productID, event.ProductLowStockEvent{
				ProductID:   productID,
				Sku:         product.Sku,
				Name:        product.Name,
				Quantity:    remaining,
				MinQuantity: product.MinQuantity,
			}); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	target := model.OrderStatus(status)
	if err := target.Validate(); err != nil {
		return apperr.ErrInvalidOrderStatus.WrapParent(err)
	}

	// Forward-only progression is deliberately not enforced; the enum is the
	// only gate. Status changes never touch stock or totals.
	if err := s.orderRepo.UpdateStatus(ctx, orderID, target); err != nil {
		return err
	}

	return nil
}

func (s *orderService) Cancel(ctx context.Context, orderID int64) error {
	return s.db.WithTx(ctx, func(tx db.DB) error {
		order, err := s.orderRepo.WithDB(tx).Get(ctx, orderID)
		if err != nil {
			return err
		}
		// Not idempotent: re-cancelling reports failure rather than
		// silently succeeding.
		if order.Status.IsTerminal() {
			return apperr.ErrOrderAlreadyCancelled
		}

		items, err := s.orderRepo.WithDB(tx).ListItems(ctx, orderID)
		if err != nil {
			return fmt.Errorf("order repository list items: %w", err)
		}

		restocked := make([]event.RestockedItem, 0, len(items))
		for _, item := range items {
			if err := s.productRepo.WithDB(tx).AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("product repository adjust stock: %w", err)
			}
			restocked = append(restocked, event.RestockedItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		if err := s.orderRepo.WithDB(tx).UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
			return fmt.Errorf("order repository update status: %w", err)
		}

		return s.emit(ctx, tx, event.TopicOrderCancelled, orderID, event.OrderCancelledEvent{
			OrderID:        orderID,
			RestockedItems: restocked,
		})
	})
}

func (s *orderService) GetOrderDetails(ctx context.Context, orderID int64) (model.Order, error) {
	return s.orderRepo.GetDetails(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("order repository list all: %w", err)
	}

	return orders, nil
}

func (s *orderService) ListOrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	target := model.OrderStatus(status)
	if err := target.Validate(); err != nil {
		return nil, apperr.ErrInvalidOrderStatus.WrapParent(err)
	}

	orders, err := s.orderRepo.ListByStatus(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("order repository list by status: %w", err)
	}

	return orders, nil
}

func (s *orderService) emit(ctx context.Context, tx db.DB, topic string, key int64, ev any) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	if err := s.outboxMsgRepo.WithDB(tx).CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
		Topic:        topic,
		Headers:      outbox.BuildHeaders(ctx),
		Payload:      payload,
		PartitionKey: ptr.New(strconv.FormatInt(key, 10)),
	}); err != nil {
		return fmt.Errorf("outbox msg repository create: %w", err)
	}

	return nil
}
