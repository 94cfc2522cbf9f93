package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/storage/db"
)

type CreateOrderParams struct {
	CustomerID *int64
	Notes      string
}

type CreateOrderItemParams struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice float64
}

type OrderRepository interface {
	WithDB(db db.DB) OrderRepository
	Create(ctx context.Context, params CreateOrderParams) (int64, error)
	Get(ctx context.Context, id int64) (model.Order, error)
	// GetDetails returns the order header with customer info and line items.
	GetDetails(ctx context.Context, id int64) (model.Order, error)
	// ListAll returns orders in insertion order.
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	CreateItem(ctx context.Context, params CreateOrderItemParams) (int64, error)
	ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// RecomputeTotal persists total_amount as the sum of quantity*unit_price
	// over the order's items.
	RecomputeTotal(ctx context.Context, id int64) error
}

type orderRepository struct {
	db db.DB
}

func NewOrderRepository(db db.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r orderRepository) WithDB(db db.DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `o.id, o.customer_id, o.order_date, o.status, o.total_amount,
	o.notes, o.created_at, o.updated_at`

func (r orderRepository) Create(ctx context.Context, params CreateOrderParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO orders (customer_id, notes)
		VALUES ($1, $2)
		RETURNING id
	`, params.CustomerID, params.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	return id, nil
}

func (r orderRepository) Get(ctx context.Context, id int64) (model.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = $1
	`, id)

	var o model.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &o.TotalAmount,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, apperr.ErrOrderNotFound
		}
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}

func (r orderRepository) GetDetails(ctx context.Context, id int64) (model.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderColumns+`, c.name, c.email
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		WHERE o.id = $1
	`, id)

	var o model.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &o.TotalAmount,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt, &o.CustomerName, &o.CustomerEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, apperr.ErrOrderNotFound
		}
		return model.Order{}, fmt.Errorf("get order details: %w", err)
	}

	items, err := r.ListItems(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	o.Items = items

	return o, nil
}

func (r orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`, c.name
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		ORDER BY o.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return collectOrders(rows)
}

func (r orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`, c.name
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		WHERE o.status = $1
		ORDER BY o.order_date DESC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}

	return collectOrders(rows)
}

func (r orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrOrderNotFound
	}

	return nil
}

func (r orderRepository) CreateItem(ctx context.Context, params CreateOrderItemParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, params.OrderID, params.ProductID, params.Quantity, params.UnitPrice).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order item: %w", err)
	}

	return id, nil
}

func (r orderRepository) ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, p.name, p.sku
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.ProductName, &item.Sku); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

func (r orderRepository) RecomputeTotal(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET
			total_amount = COALESCE((
				SELECT SUM(quantity * unit_price) FROM order_items WHERE order_id = $1
			), 0),
			updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("recompute order total: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrOrderNotFound
	}

	return nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &o.TotalAmount,
			&o.Notes, &o.CreatedAt, &o.UpdatedAt, &o.CustomerName); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}
