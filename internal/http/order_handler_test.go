package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/config"
	zionhttp "github.com/zionbm/zion/internal/http"
	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/service"
	"github.com/zionbm/zion/pkg/validator"
)

type orderServiceStub struct {
	createOrderFn  func(ctx context.Context, params service.CreateOrderParams) (int64, error)
	addItemFn      func(ctx context.Context, orderID, productID int64, quantity int) error
	updateStatusFn func(ctx context.Context, orderID int64, status string) error
	cancelFn       func(ctx context.Context, orderID int64) error
	getDetailsFn   func(ctx context.Context, orderID int64) (model.Order, error)
}

func (s *orderServiceStub) CreateOrder(ctx context.Context, params service.CreateOrderParams) (int64, error) {
	return s.createOrderFn(ctx, params)
}

func (s *orderServiceStub) AddItem(ctx context.Context, orderID, productID int64, quantity int) error {
	return s.addItemFn(ctx, orderID, productID, quantity)
}

func (s *orderServiceStub) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	return s.updateStatusFn(ctx, orderID, status)
}

func (s *orderServiceStub) Cancel(ctx context.Context, orderID int64) error {
	return s.cancelFn(ctx, orderID)
}

func (s *orderServiceStub) GetOrderDetails(ctx context.Context, orderID int64) (model.Order, error) {
	return s.getDetailsFn(ctx, orderID)
}

func (s *orderServiceStub) ListOrders(ctx context.Context) ([]model.Order, error) {
	return nil, nil
}

func (s *orderServiceStub) ListOrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	return nil, nil
}

func newTestServer(t *testing.T, orderSvc service.OrderService) *httptest.Server {
	t.Helper()

	validate, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	svc := zionhttp.New(
		config.HTTP{Port: 0},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		prometheus.NewRegistry(),
		validate,
		zionhttp.Services{Order: orderSvc},
	)

	r := chi.NewRouter()
	svc.RegisterMiddlewares(r)
	svc.RegisterHandlers(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return res, decoded
}

func TestCreateOrderHandler(t *testing.T) {
	t.Parallel()

	stub := &orderServiceStub{
		createOrderFn: func(_ context.Context, params service.CreateOrderParams) (int64, error) {
			assert.Equal(t, "rush delivery", params.Notes)
			require.NotNil(t, params.CustomerID)
			assert.EqualValues(t, 7, *params.CustomerID)
			return 42, nil
		},
	}
	srv := newTestServer(t, stub)

	res, body := doJSON(t, http.MethodPost, srv.URL+"/orders",
		`{"customer_id": 7, "notes": "rush delivery"}`)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.EqualValues(t, 42, body["id"])
}

func TestCreateOrderHandlerMalformedBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &orderServiceStub{})

	res, body := doJSON(t, http.MethodPost, srv.URL+"/orders", `{"customer_id": `)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestAddItemHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		stub := &orderServiceStub{
			addItemFn: func(_ context.Context, orderID, productID int64, quantity int) error {
				assert.EqualValues(t, 5, orderID)
				assert.EqualValues(t, 3, productID)
				assert.Equal(t, 2, quantity)
				return nil
			},
		}
		srv := newTestServer(t, stub)

		res, _ := doJSON(t, http.MethodPost, srv.URL+"/orders/5/items",
			`{"product_id": 3, "quantity": 2}`)

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})

	t.Run("insufficient stock maps to 422", func(t *testing.T) {
		stub := &orderServiceStub{
			addItemFn: func(_ context.Context, _, _ int64, _ int) error {
				return apperr.ErrInsufficientStock
			},
		}
		srv := newTestServer(t, stub)

		res, body := doJSON(t, http.MethodPost, srv.URL+"/orders/5/items",
			`{"product_id": 3, "quantity": 999}`)

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		srv := newTestServer(t, &orderServiceStub{})

		res, body := doJSON(t, http.MethodPost, srv.URL+"/orders/5/items", `{}`)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
	})

	t.Run("non-numeric order id rejected", func(t *testing.T) {
		srv := newTestServer(t, &orderServiceStub{})

		res, body := doJSON(t, http.MethodPost, srv.URL+"/orders/abc/items",
			`{"product_id": 3, "quantity": 2}`)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
	})
}

func TestCancelOrderHandler(t *testing.T) {
	t.Parallel()

	t.Run("already cancelled maps to 409", func(t *testing.T) {
		stub := &orderServiceStub{
			cancelFn: func(_ context.Context, _ int64) error {
				return apperr.ErrOrderAlreadyCancelled
			},
		}
		srv := newTestServer(t, stub)

		res, body := doJSON(t, http.MethodPost, srv.URL+"/orders/5/cancel", "")

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Equal(t, "ORDER_ALREADY_CANCELLED", body["code"])
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		stub := &orderServiceStub{
			cancelFn: func(_ context.Context, _ int64) error {
				return apperr.ErrOrderNotFound
			},
		}
		srv := newTestServer(t, stub)

		res, body := doJSON(t, http.MethodPost, srv.URL+"/orders/99/cancel", "")

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "ORDER_NOT_FOUND", body["code"])
	})
}

func TestGetOrderDetailsHandler(t *testing.T) {
	t.Parallel()

	stub := &orderServiceStub{
		getDetailsFn: func(_ context.Context, orderID int64) (model.Order, error) {
			require.EqualValues(t, 12, orderID)
			return model.Order{
				ID:          12,
				Status:      model.OrderStatusPending,
				TotalAmount: 2999.97,
			}, nil
		},
	}
	srv := newTestServer(t, stub)

	res, body := doJSON(t, http.MethodGet, srv.URL+"/orders/12", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.EqualValues(t, 12, body["id"])
	assert.Equal(t, "pending", body["status"])
	assert.InDelta(t, 2999.97, body["total_amount"], 0.001)
}
