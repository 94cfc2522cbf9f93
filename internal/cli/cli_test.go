package cli_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/cli"
	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/service"
)

type orderServiceStub struct {
	service.OrderService

	createOrderFn func(ctx context.Context, params service.CreateOrderParams) (int64, error)
	addItemFn     func(ctx context.Context, orderID, productID int64, quantity int) error
	listOrdersFn  func(ctx context.Context) ([]model.Order, error)
}

func (s *orderServiceStub) CreateOrder(ctx context.Context, params service.CreateOrderParams) (int64, error) {
	return s.createOrderFn(ctx, params)
}

func (s *orderServiceStub) AddItem(ctx context.Context, orderID, productID int64, quantity int) error {
	return s.addItemFn(ctx, orderID, productID, quantity)
}

func (s *orderServiceStub) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.listOrdersFn(ctx)
}

type dashboardServiceStub struct {
	stats service.DashboardStats
}

func (s *dashboardServiceStub) Stats(context.Context) (service.DashboardStats, error) {
	return s.stats, nil
}

// run feeds a scripted session to the menu loop and returns everything it
// printed. Each element is one line of user input.
func run(t *testing.T, svcs cli.Services, inputs ...string) string {
	t.Helper()

	var out strings.Builder
	app := cli.New(strings.NewReader(strings.Join(inputs, "\n")+"\n"), &out, svcs)

	err := app.Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestQuitFromMainMenu(t *testing.T) {
	t.Parallel()

	out := run(t, cli.Services{}, "0")

	assert.Contains(t, out, "WELCOME TO ZION BUSINESS MANAGER")
	assert.Contains(t, out, "MAIN MENU")
	assert.Contains(t, out, "Goodbye!")
}

func TestCreateOrderFlow(t *testing.T) {
	t.Parallel()

	stub := &orderServiceStub{
		createOrderFn: func(_ context.Context, params service.CreateOrderParams) (int64, error) {
			require.NotNil(t, params.CustomerID)
			assert.EqualValues(t, 7, *params.CustomerID)
			assert.Equal(t, "gift wrap", params.Notes)
			return 31, nil
		},
	}

	// orders menu -> create -> customer id -> notes -> enter -> back -> quit
	out := run(t, cli.Services{Order: stub}, "4", "2", "7", "gift wrap", "", "0", "0")

	assert.Contains(t, out, "Order created successfully! Order ID: 31")
	assert.Contains(t, out, "Now you can add items to this order.")
}

func TestWalkInOrderHasNoCustomer(t *testing.T) {
	t.Parallel()

	stub := &orderServiceStub{
		createOrderFn: func(_ context.Context, params service.CreateOrderParams) (int64, error) {
			assert.Nil(t, params.CustomerID)
			return 32, nil
		},
	}

	out := run(t, cli.Services{Order: stub}, "4", "2", "", "", "", "0", "0")

	assert.Contains(t, out, "Order created successfully! Order ID: 32")
}

func TestAddItemFlowSurfacesStockError(t *testing.T) {
	t.Parallel()

	stub := &orderServiceStub{
		addItemFn: func(_ context.Context, orderID, productID int64, quantity int) error {
			assert.EqualValues(t, 3, orderID)
			assert.EqualValues(t, 9, productID)
			assert.Equal(t, 50, quantity)
			return apperr.ErrInsufficientStock
		},
	}

	out := run(t, cli.Services{Order: stub}, "4", "4", "3", "9", "50", "", "0", "0")

	assert.Contains(t, out, "Error adding item")
	assert.Contains(t, out, "requested quantity exceeds available stock")
}

func TestDashboardMenu(t *testing.T) {
	t.Parallel()

	stub := &dashboardServiceStub{
		stats: service.DashboardStats{
			TotalCustomers: 3,
			TotalProducts:  12,
			TotalOrders:    9,
			TotalRevenue:   1234.5,
			PendingOrders:  2,
			LowStockAlerts: 1,
			OrdersByStatus: map[model.OrderStatus]int{
				model.OrderStatusPending: 2,
				model.OrderStatusShipped: 7,
			},
		},
	}

	out := run(t, cli.Services{Dashboard: stub}, "1", "", "0")

	assert.Contains(t, out, "Total Customers: 3")
	assert.Contains(t, out, "Total Revenue: $1234.50")
	assert.Contains(t, out, "Low Stock Alerts: 1")
}

func TestNonNumericChoiceReprompts(t *testing.T) {
	t.Parallel()

	out := run(t, cli.Services{}, "abc", "0")

	assert.Contains(t, out, "Please enter a valid number")
	assert.Contains(t, out, "Goodbye!")
}
