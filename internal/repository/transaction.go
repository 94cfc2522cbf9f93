package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/storage/db"
)

type CreateTransactionParams struct {
	OrderID       *int64
	Type          string
	Amount        float64
	PaymentMethod string
	Notes         string
}

// SumByTypeParams bounds the summary window; nil bounds are open.
type SumByTypeParams struct {
	Start *time.Time
	End   *time.Time
}

type TransactionRepository interface {
	WithDB(db db.DB) TransactionRepository
	// Create appends a ledger entry. The ledger is append-only; there are no
	// update or delete operations.
	Create(ctx context.Context, params CreateTransactionParams) (int64, error)
	ListAll(ctx context.Context) ([]model.Transaction, error)
	// SumByType returns per-transaction-type amount totals.
	SumByType(ctx context.Context, params SumByTypeParams) (map[string]float64, error)
	// TotalOrderCost is the sum of quantity*cost_price over line items of all
	// non-cancelled orders, using the current catalog cost price.
	TotalOrderCost(ctx context.Context) (float64, error)
}

type transactionRepository struct {
	db db.DB
}

func NewTransactionRepository(db db.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r transactionRepository) WithDB(db db.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r transactionRepository) Create(ctx context.Context, params CreateTransactionParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO transactions (order_id, transaction_type, amount, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, params.OrderID, params.Type, params.Amount, params.PaymentMethod, params.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	return id, nil
}

func (r transactionRepository) ListAll(ctx context.Context) ([]model.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, transaction_type, amount, payment_method, transaction_date, notes
		FROM transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.OrderID, &t.Type, &t.Amount, &t.PaymentMethod,
			&t.TransactionDate, &t.Notes); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}

func (r transactionRepository) SumByType(ctx context.Context, params SumByTypeParams) (map[string]float64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT transaction_type, SUM(amount)
		FROM transactions
		WHERE ($1::timestamptz IS NULL OR transaction_date >= $1)
		  AND ($2::timestamptz IS NULL OR transaction_date <= $2)
		GROUP BY transaction_type
	`, params.Start, params.End)
	if err != nil {
		return nil, fmt.Errorf("sum transactions by type: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var (
			transactionType string
			total           float64
		)
		if err := rows.Scan(&transactionType, &total); err != nil {
			return nil, fmt.Errorf("scan transaction total: %w", err)
		}
		totals[transactionType] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction totals: %w", err)
	}

	return totals, nil
}

func (r transactionRepository) TotalOrderCost(ctx context.Context) (float64, error) {
	var totalCost float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(oi.quantity * p.cost_price), 0)
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status != 'cancelled'
	`).Scan(&totalCost)
	if err != nil {
		return 0, fmt.Errorf("total order cost: %w", err)
	}

	return totalCost, nil
}
