package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zionbm/zion/internal/service"
)

type orderHandler struct {
	*Service
}

func newOrderHandler(s *Service) *orderHandler {
	return &orderHandler{Service: s}
}

func (h *orderHandler) register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.details)
	r.Post("/{id}/items", h.addItem)
	r.Put("/{id}/status", h.updateStatus)
	r.Post("/{id}/cancel", h.cancel)
	r.Post("/{id}/payments", h.recordPayment)
}

type createOrderRequest struct {
	CustomerID *int64 `json:"customer_id"`
	Notes      string `json:"notes"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

func (h *orderHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decode[createOrderRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.orderSvc.CreateOrder(r.Context(), service.CreateOrderParams{
		CustomerID: body.CustomerID,
		Notes:      body.Notes,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (h *orderHandler) list(w http.ResponseWriter, r *http.Request) {
	var err error
	var orders any

	if status := r.URL.Query().Get("status"); status != "" {
		orders, err = h.orderSvc.ListOrdersByStatus(r.Context(), status)
	} else {
		orders, err = h.orderSvc.ListOrders(r.Context())
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, orders)
}

func (h *orderHandler) details(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	order, err := h.orderSvc.GetOrderDetails(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, order)
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required"`
}

func (h *orderHandler) addItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[addItemRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.orderSvc.AddItem(r.Context(), id, body.ProductID, body.Quantity); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *orderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[updateOrderStatusRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.orderSvc.UpdateStatus(r.Context(), id, body.Status); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *orderHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.orderSvc.Cancel(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

type recordPaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

func (h *orderHandler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[recordPaymentRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	txID, err := h.financeSvc.RecordPayment(r.Context(), id, body.Amount, body.PaymentMethod)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, idResponse{ID: txID})
}
