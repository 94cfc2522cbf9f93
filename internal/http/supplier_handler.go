package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

type supplierHandler struct {
	*Service
}

func newSupplierHandler(s *Service) *supplierHandler {
	return &supplierHandler{Service: s}
}

func (h *supplierHandler) register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createSupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
}

func (h *supplierHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decode[createSupplierRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.supplierSvc.CreateSupplier(r.Context(), service.CreateSupplierParams{
		Name:          body.Name,
		Email:         body.Email,
		Phone:         body.Phone,
		Address:       body.Address,
		ContactPerson: body.ContactPerson,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (h *supplierHandler) list(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.supplierSvc.ListSuppliers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, suppliers)
}

func (h *supplierHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	supplier, err := h.supplierSvc.GetSupplier(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, supplier)
}

type updateSupplierRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contact_person"`
}

func (h *supplierHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[updateSupplierRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	err = h.supplierSvc.UpdateSupplier(r.Context(), id, repository.UpdateSupplierParams{
		Name:          body.Name,
		Email:         body.Email,
		Phone:         body.Phone,
		Address:       body.Address,
		ContactPerson: body.ContactPerson,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *supplierHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.supplierSvc.DeleteSupplier(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}
