package service

import (
	"context"
	"fmt"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
)

// InventoryReport is a read-only rollup over the catalog.
type InventoryReport struct {
	TotalProducts       int             `json:"total_products"`
	TotalItems          int             `json:"total_items"`
	TotalInventoryValue float64         `json:"total_inventory_value"`
	LowStockCount       int             `json:"low_stock_count"`
	LowStockProducts    []model.Product `json:"low_stock_products"`
}

type InventoryService interface {
	// StockLevel returns the quantity on hand, or zero for an unknown product.
	StockLevel(ctx context.Context, productID int64) (int, error)
	Restock(ctx context.Context, productID int64, quantity int) error
	AdjustStock(ctx context.Context, productID int64, delta int) error
	Report(ctx context.Context) (InventoryReport, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
}

func NewInventoryService(productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{productRepo: productRepo}
}

func (s *inventoryService) StockLevel(ctx context.Context, productID int64) (int, error) {
	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		return 0, err
	}

	return product.Quantity, nil
}

func (s *inventoryService) Restock(ctx context.Context, productID int64, quantity int) error {
	return s.productRepo.AdjustStock(ctx, productID, quantity)
}

func (s *inventoryService) AdjustStock(ctx context.Context, productID int64, delta int) error {
	return s.productRepo.AdjustStock(ctx, productID, delta)
}

func (s *inventoryService) Report(ctx context.Context) (InventoryReport, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return InventoryReport{}, fmt.Errorf("product repository list all: %w", err)
	}

	report := InventoryReport{
		TotalProducts:    len(products),
		LowStockProducts: []model.Product{},
	}
	for _, p := range products {
		report.TotalItems += p.Quantity
		report.TotalInventoryValue += float64(p.Quantity) * p.Price
		if p.LowStock() {
			report.LowStockProducts = append(report.LowStockProducts, p)
		}
	}
	report.LowStockCount = len(report.LowStockProducts)

	return report, nil
}
