package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zionbm/zion/internal/model"
	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

type customerHandler struct {
	*Service
}

func newCustomerHandler(s *Service) *customerHandler {
	return &customerHandler{Service: s}
}

func (h *customerHandler) register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *customerHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decode[createCustomerRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.customerSvc.RegisterCustomer(r.Context(), service.RegisterCustomerParams{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (h *customerHandler) list(w http.ResponseWriter, r *http.Request) {
	var err error
	var customers any

	if query := r.URL.Query().Get("q"); query != "" {
		customers, err = h.customerSvc.SearchCustomers(r.Context(), query)
	} else {
		customers, err = h.customerSvc.ListCustomers(r.Context())
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, customers)
}

type customerDetailsResponse struct {
	model.Customer
	Orders []model.Order `json:"orders"`
}

func (h *customerHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	customer, orders, err := h.customerSvc.GetCustomerWithOrders(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, customerDetailsResponse{
		Customer: customer,
		Orders:   orders,
	})
}

type updateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *customerHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[updateCustomerRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	err = h.customerSvc.UpdateCustomer(r.Context(), id, repository.UpdateCustomerParams{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *customerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.customerSvc.DeleteCustomer(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}
