package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/event"
	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/service"
)

type orderFixture struct {
	store    *memStore
	orders   *fakeOrderRepo
	products *fakeProductRepo
	outbox   *fakeOutboxRepo
	svc      service.OrderService
}

func newOrderFixture() *orderFixture {
	store := newMemStore()
	orders := &fakeOrderRepo{store: store}
	products := &fakeProductRepo{store: store}
	outbox := &fakeOutboxRepo{store: store}
	return &orderFixture{
		store:    store,
		orders:   orders,
		products: products,
		outbox:   outbox,
		svc:      service.NewOrderService(&fakeDB{store: store}, orders, products, outbox),
	}
}

func (f *orderFixture) laptop() int64 {
	return f.store.addProduct(model.Product{
		Name:        "Laptop",
		Sku:         "ELEC-001",
		Price:       999.99,
		CostPrice:   700,
		Quantity:    10,
		MinQuantity: 5,
	})
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()

	orderID, err := f.svc.CreateOrder(ctx, service.CreateOrderParams{Notes: "walk-in"})
	require.NoError(t, err)

	order := f.store.orders[orderID]
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Zero(t, order.TotalAmount)
	assert.Nil(t, order.CustomerID)
	assert.Empty(t, f.store.orderItems(orderID))

	t.Run("Should emit order created event", func(t *testing.T) {
		require.Len(t, f.store.outbox, 1)
		assert.Equal(t, event.TopicOrderCreated, f.store.outbox[0].Topic)
	})
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Should snapshot price, decrement stock and recompute total", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()
		orderID, err := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, err)

		require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 3))

		assert.Equal(t, 7, f.store.products[productID].Quantity)
		assert.InDelta(t, 2999.97, f.store.orders[orderID].TotalAmount, 0.001)

		items := f.store.orderItems(orderID)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.InDelta(t, 999.99, items[0].UnitPrice, 0.001)
	})

	t.Run("Should keep recorded totals when catalog price changes", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 3))

		p := f.store.products[productID]
		p.Price = 1.00
		f.store.products[productID] = p

		// A later recompute still uses the captured unit price.
		require.NoError(t, f.orders.RecomputeTotal(ctx, orderID))
		assert.InDelta(t, 2999.97, f.store.orders[orderID].TotalAmount, 0.001)
	})

	t.Run("Should reject insufficient stock without mutation", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 3))

		err := f.svc.AddItem(ctx, orderID, productID, 8)
		assert.ErrorIs(t, err, apperr.ErrInsufficientStock)

		assert.Equal(t, 7, f.store.products[productID].Quantity)
		assert.InDelta(t, 2999.97, f.store.orders[orderID].TotalAmount, 0.001)
		assert.Len(t, f.store.orderItems(orderID), 1)
	})

	t.Run("Should reject unknown product", func(t *testing.T) {
		f := newOrderFixture()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})

		err := f.svc.AddItem(ctx, orderID, 999, 1)
		assert.ErrorIs(t, err, apperr.ErrProductNotFound)
	})

	t.Run("Should reject unknown order", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()

		err := f.svc.AddItem(ctx, 999, productID, 1)
		assert.ErrorIs(t, err, apperr.ErrOrderNotFound)
		assert.Equal(t, 10, f.store.products[productID].Quantity)
	})

	t.Run("Should reject non-positive quantity", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})

		err := f.svc.AddItem(ctx, orderID, productID, 0)
		var zErr interface{ Code() string }
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "VALIDATION_FAILED", zErr.Code())
	})

	t.Run("Should reject items on a cancelled order", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, f.svc.Cancel(ctx, orderID))

		err := f.svc.AddItem(ctx, orderID, productID, 1)
		assert.ErrorIs(t, err, apperr.ErrOrderAlreadyCancelled)
		assert.Equal(t, 10, f.store.products[productID].Quantity)
	})

	t.Run("Should emit low stock event when crossing the threshold", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})

		require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 3))
		assert.NotContains(t, outboxTopics(f.store), event.TopicProductLowStock)

		// 7 -> 4 crosses min_quantity 5.
		require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 3))
		assert.Contains(t, outboxTopics(f.store), event.TopicProductLowStock)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})

	t.Run("Should reject a status outside the enumeration", func(t *testing.T) {
		err := f.svc.UpdateStatus(ctx, orderID, "bogus")
		var zErr interface{ Code() string }
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, apperr.ErrInvalidOrderStatus.Code(), zErr.Code())
		assert.Equal(t, model.OrderStatusPending, f.store.orders[orderID].Status)
	})

	t.Run("Should allow any valid status regardless of prior state", func(t *testing.T) {
		require.NoError(t, f.svc.UpdateStatus(ctx, orderID, "shipped"))
		assert.Equal(t, model.OrderStatusShipped, f.store.orders[orderID].Status)

		// Backwards transitions are not blocked.
		require.NoError(t, f.svc.UpdateStatus(ctx, orderID, "pending"))
		assert.Equal(t, model.OrderStatusPending, f.store.orders[orderID].Status)
	})

	t.Run("Should not touch stock or totals", func(t *testing.T) {
		productID := f.laptop()
		require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 2))
		before := f.store.products[productID].Quantity
		total := f.store.orders[orderID].TotalAmount

		require.NoError(t, f.svc.UpdateStatus(ctx, orderID, "confirmed"))
		assert.Equal(t, before, f.store.products[productID].Quantity)
		assert.Equal(t, total, f.store.orders[orderID].TotalAmount)
	})

	t.Run("Should report unknown order", func(t *testing.T) {
		err := f.svc.UpdateStatus(ctx, 999, "confirmed")
		assert.ErrorIs(t, err, apperr.ErrOrderNotFound)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Should restore stock for every item and set status", func(t *testing.T) {
		f := newOrderFixture()
		laptopID := f.laptop()
		mouseID := f.store.addProduct(model.Product{
			Name: "Mouse", Sku: "ELEC-002", Price: 29.99, CostPrice: 15,
			Quantity: 50, MinQuantity: 10,
		})
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, f.svc.AddItem(ctx, orderID, laptopID, 3))
		require.NoError(t, f.svc.AddItem(ctx, orderID, mouseID, 5))

		require.NoError(t, f.svc.Cancel(ctx, orderID))

		assert.Equal(t, 10, f.store.products[laptopID].Quantity)
		assert.Equal(t, 50, f.store.products[mouseID].Quantity)
		assert.Equal(t, model.OrderStatusCancelled, f.store.orders[orderID].Status)
		assert.Contains(t, outboxTopics(f.store), event.TopicOrderCancelled)
	})

	t.Run("Should fail on second cancel without further mutation", func(t *testing.T) {
		f := newOrderFixture()
		productID := f.laptop()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 3))

		require.NoError(t, f.svc.Cancel(ctx, orderID))
		assert.Equal(t, 10, f.store.products[productID].Quantity)

		err := f.svc.Cancel(ctx, orderID)
		assert.ErrorIs(t, err, apperr.ErrOrderAlreadyCancelled)
		assert.Equal(t, 10, f.store.products[productID].Quantity)
	})

	t.Run("Should fail on unknown order", func(t *testing.T) {
		f := newOrderFixture()
		err := f.svc.Cancel(ctx, 999)
		assert.ErrorIs(t, err, apperr.ErrOrderNotFound)
	})

	t.Run("Should roll back partial restores on storage failure", func(t *testing.T) {
		f := newOrderFixture()
		laptopID := f.laptop()
		orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, f.svc.AddItem(ctx, orderID, laptopID, 3))

		// Corrupt the second item so its restore fails mid-sequence.
		badItemID := f.store.id()
		f.store.items[badItemID] = model.OrderItem{
			ID: badItemID, OrderID: orderID, ProductID: 999, Quantity: 1, UnitPrice: 1,
		}
		f.store.itemIDs = append(f.store.itemIDs, badItemID)

		err := f.svc.Cancel(ctx, orderID)
		require.Error(t, err)
		assert.False(t, errors.Is(err, apperr.ErrOrderAlreadyCancelled))

		// Nothing from the failed unit of work is visible.
		assert.Equal(t, 7, f.store.products[laptopID].Quantity)
		assert.NotEqual(t, model.OrderStatusCancelled, f.store.orders[orderID].Status)
	})
}

func TestStockConservation(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	productID := f.laptop()
	const startQuantity = 10

	var orderIDs []int64
	for range 3 {
		orderID, err := f.svc.CreateOrder(ctx, service.CreateOrderParams{})
		require.NoError(t, err)
		orderIDs = append(orderIDs, orderID)
	}

	require.NoError(t, f.svc.AddItem(ctx, orderIDs[0], productID, 2))
	require.NoError(t, f.svc.AddItem(ctx, orderIDs[1], productID, 3))
	require.NoError(t, f.svc.AddItem(ctx, orderIDs[2], productID, 4))
	assert.Error(t, f.svc.AddItem(ctx, orderIDs[0], productID, 5)) // only 1 left
	require.NoError(t, f.svc.Cancel(ctx, orderIDs[1]))
	require.NoError(t, f.svc.AddItem(ctx, orderIDs[2], productID, 1))

	// On-hand plus units held by non-cancelled orders equals the opening stock.
	held := 0
	for _, id := range f.store.itemIDs {
		item := f.store.items[id]
		if f.store.orders[item.OrderID].Status != model.OrderStatusCancelled {
			held += item.Quantity
		}
	}
	assert.Equal(t, startQuantity, f.store.products[productID].Quantity+held)
}

func TestGetOrderDetails(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	productID := f.laptop()
	orderID, _ := f.svc.CreateOrder(ctx, service.CreateOrderParams{Notes: "rush"})
	require.NoError(t, f.svc.AddItem(ctx, orderID, productID, 2))

	order, err := f.svc.GetOrderDetails(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "rush", order.Notes)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)

	_, err = f.svc.GetOrderDetails(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrOrderNotFound)
}

func outboxTopics(store *memStore) []string {
	topics := make([]string, 0, len(store.outbox))
	for _, msg := range store.outbox {
		topics = append(topics, msg.Topic)
	}
	return topics
}
