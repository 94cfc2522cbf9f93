package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

type reportFixture struct {
	store     *memStore
	orderSvc  service.OrderService
	inventory service.InventoryService
	finance   service.FinanceService
	dashboard service.DashboardService
}

func newReportFixture() *reportFixture {
	store := newMemStore()
	orders := &fakeOrderRepo{store: store}
	products := &fakeProductRepo{store: store}
	customers := &fakeCustomerRepo{store: store}
	transactions := &fakeTransactionRepo{store: store}
	outbox := &fakeOutboxRepo{store: store}

	return &reportFixture{
		store:     store,
		orderSvc:  service.NewOrderService(&fakeDB{store: store}, orders, products, outbox),
		inventory: service.NewInventoryService(products),
		finance:   service.NewFinanceService(transactions),
		dashboard: service.NewDashboardService(customers, products, orders),
	}
}

func TestInventoryReport(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	f.store.addProduct(model.Product{Name: "Laptop", Sku: "ELEC-001", Price: 1000, Quantity: 10, MinQuantity: 5})
	f.store.addProduct(model.Product{Name: "Mouse", Sku: "ELEC-002", Price: 30, Quantity: 4, MinQuantity: 10})

	report, err := f.inventory.Report(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalProducts)
	assert.Equal(t, 14, report.TotalItems)
	assert.InDelta(t, 10_120, report.TotalInventoryValue, 0.001)
	assert.Equal(t, 1, report.LowStockCount)
	require.Len(t, report.LowStockProducts, 1)
	assert.Equal(t, "ELEC-002", report.LowStockProducts[0].Sku)
}

func TestFinancialSummary(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	productID := f.store.addProduct(model.Product{
		Name: "Laptop", Sku: "ELEC-001", Price: 1000, CostPrice: 700, Quantity: 10, MinQuantity: 2,
	})

	keptID, err := f.orderSvc.CreateOrder(ctx, service.CreateOrderParams{})
	require.NoError(t, err)
	require.NoError(t, f.orderSvc.AddItem(ctx, keptID, productID, 2))

	cancelledID, err := f.orderSvc.CreateOrder(ctx, service.CreateOrderParams{})
	require.NoError(t, err)
	require.NoError(t, f.orderSvc.AddItem(ctx, cancelledID, productID, 3))
	require.NoError(t, f.orderSvc.Cancel(ctx, cancelledID))

	_, err = f.finance.RecordPayment(ctx, keptID, 2000, "card")
	require.NoError(t, err)
	_, err = f.finance.RecordTransaction(ctx, service.RecordTransactionParams{Type: "sale", Amount: 500})
	require.NoError(t, err)
	_, err = f.finance.RecordTransaction(ctx, service.RecordTransactionParams{Type: "expense", Amount: 300})
	require.NoError(t, err)

	summary, err := f.finance.Summary(ctx, nil, nil)
	require.NoError(t, err)

	// Cost covers only the non-cancelled order's items, at current cost price.
	assert.InDelta(t, 1400, summary.TotalCost, 0.001)
	assert.InDelta(t, 2500, summary.Revenue, 0.001)
	assert.InDelta(t, 1100, summary.Profit, 0.001)
	assert.InDelta(t, 300, summary.ByType["expense"], 0.001)
}

func TestFinancialSummaryUsesLiveCostPrice(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	productID := f.store.addProduct(model.Product{
		Name: "Laptop", Sku: "ELEC-001", Price: 1000, CostPrice: 700, Quantity: 10,
	})
	orderID, _ := f.orderSvc.CreateOrder(ctx, service.CreateOrderParams{})
	require.NoError(t, f.orderSvc.AddItem(ctx, orderID, productID, 2))

	p := f.store.products[productID]
	p.CostPrice = 800
	f.store.products[productID] = p

	summary, err := f.finance.Summary(ctx, nil, nil)
	require.NoError(t, err)
	// Unlike the sale-price snapshot on line items, cost follows the catalog.
	assert.InDelta(t, 1600, summary.TotalCost, 0.001)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	customers := &fakeCustomerRepo{store: f.store}
	_, err := customers.Create(ctx, repository.CreateCustomerParams{Name: "John Doe"})
	require.NoError(t, err)

	productID := f.store.addProduct(model.Product{
		Name: "Laptop", Sku: "ELEC-001", Price: 1000, Quantity: 100, MinQuantity: 1,
	})

	var orderIDs []int64
	for range 7 {
		orderID, err := f.orderSvc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, err)
		orderIDs = append(orderIDs, orderID)
	}

	require.NoError(t, f.orderSvc.AddItem(ctx, orderIDs[0], productID, 1))
	require.NoError(t, f.orderSvc.UpdateStatus(ctx, orderIDs[0], "confirmed"))
	require.NoError(t, f.orderSvc.AddItem(ctx, orderIDs[1], productID, 2))
	require.NoError(t, f.orderSvc.UpdateStatus(ctx, orderIDs[1], "delivered"))
	require.NoError(t, f.orderSvc.AddItem(ctx, orderIDs[2], productID, 3))
	require.NoError(t, f.orderSvc.Cancel(ctx, orderIDs[2]))

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 7, stats.TotalOrders)
	// Pending and cancelled orders are excluded from revenue.
	assert.InDelta(t, 3000, stats.TotalRevenue, 0.001)
	assert.Equal(t, 4, stats.PendingOrders)
	assert.Equal(t, 1, stats.OrdersByStatus[model.OrderStatusCancelled])
	assert.Equal(t, 0, stats.LowStockAlerts)

	// Last five orders in insertion order.
	require.Len(t, stats.RecentOrders, 5)
	assert.Equal(t, orderIDs[2], stats.RecentOrders[0].ID)
	assert.Equal(t, orderIDs[6], stats.RecentOrders[4].ID)
}
