package service

import (
	"context"
	"fmt"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
)

type DashboardStats struct {
	TotalCustomers int                       `json:"total_customers"`
	TotalProducts  int                       `json:"total_products"`
	TotalOrders    int                       `json:"total_orders"`
	TotalRevenue   float64                   `json:"total_revenue"`
	PendingOrders  int                       `json:"pending_orders"`
	LowStockAlerts int                       `json:"low_stock_alerts"`
	OrdersByStatus map[model.OrderStatus]int `json:"orders_by_status"`
	RecentOrders   []model.Order             `json:"recent_orders"`
}

type DashboardService interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type dashboardService struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
}

func NewDashboardService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) DashboardService {
	return &dashboardService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("customer repository list all: %w", err)
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("product repository list all: %w", err)
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("order repository list all: %w", err)
	}

	lowStock, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("product repository list low stock: %w", err)
	}

	stats := DashboardStats{
		TotalCustomers: len(customers),
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		LowStockAlerts: len(lowStock),
		OrdersByStatus: make(map[model.OrderStatus]int),
	}

	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
		switch o.Status {
		case model.OrderStatusPending:
			stats.PendingOrders++
		case model.OrderStatusCancelled:
			// excluded from revenue
		default:
			stats.TotalRevenue += o.TotalAmount
		}
	}

	// Last five orders in insertion order, matching the store's natural order.
	recent := orders
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	stats.RecentOrders = recent

	return stats, nil
}
