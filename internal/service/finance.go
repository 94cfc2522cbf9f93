package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
)

type RecordTransactionParams struct {
	Type          string
	OrderID       *int64
	Amount        float64
	PaymentMethod string
	Notes         string
}

// FinancialSummary aggregates the ledger. TotalCost uses the current catalog
// cost price rather than a per-item snapshot; revenue comes from ledger
// entries typed "payment" or "sale". The asymmetry with the order engine's
// price snapshot is intentional.
type FinancialSummary struct {
	Revenue   float64            `json:"revenue"`
	TotalCost float64            `json:"total_cost"`
	Profit    float64            `json:"profit"`
	ByType    map[string]float64 `json:"by_type"`
}

type FinanceService interface {
	RecordTransaction(ctx context.Context, params RecordTransactionParams) (int64, error)
	// RecordPayment appends an order-linked "payment" ledger entry.
	RecordPayment(ctx context.Context, orderID int64, amount float64, paymentMethod string) (int64, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	Summary(ctx context.Context, start, end *time.Time) (FinancialSummary, error)
}

type financeService struct {
	transactionRepo repository.TransactionRepository
}

func NewFinanceService(transactionRepo repository.TransactionRepository) FinanceService {
	return &financeService{transactionRepo: transactionRepo}
}

func (s *financeService) RecordTransaction(ctx context.Context, params RecordTransactionParams) (int64, error) {
	id, err := s.transactionRepo.Create(ctx, repository.CreateTransactionParams{
		OrderID:       params.OrderID,
		Type:          params.Type,
		Amount:        params.Amount,
		PaymentMethod: params.PaymentMethod,
		Notes:         params.Notes,
	})
	if err != nil {
		return 0, fmt.Errorf("transaction repository create: %w", err)
	}

	return id, nil
}

func (s *financeService) RecordPayment(ctx context.Context, orderID int64, amount float64, paymentMethod string) (int64, error) {
	return s.RecordTransaction(ctx, RecordTransactionParams{
		Type:          "payment",
		OrderID:       &orderID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Notes:         fmt.Sprintf("Payment for order #%d", orderID),
	})
}

func (s *financeService) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction repository list all: %w", err)
	}

	return transactions, nil
}

func (s *financeService) Summary(ctx context.Context, start, end *time.Time) (FinancialSummary, error) {
	byType, err := s.transactionRepo.SumByType(ctx, repository.SumByTypeParams{
		Start: start,
		End:   end,
	})
	if err != nil {
		return FinancialSummary{}, fmt.Errorf("transaction repository sum by type: %w", err)
	}

	totalCost, err := s.transactionRepo.TotalOrderCost(ctx)
	if err != nil {
		return FinancialSummary{}, fmt.Errorf("transaction repository total order cost: %w", err)
	}

	revenue := byType["payment"] + byType["sale"]

	return FinancialSummary{
		Revenue:   revenue,
		TotalCost: totalCost,
		Profit:    revenue - totalCost,
		ByType:    byType,
	}, nil
}
