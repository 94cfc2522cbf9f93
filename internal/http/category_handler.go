package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

type categoryHandler struct {
	*Service
}

func newCategoryHandler(s *Service) *categoryHandler {
	return &categoryHandler{Service: s}
}

func (h *categoryHandler) register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *categoryHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decode[createCategoryRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.categorySvc.CreateCategory(r.Context(), service.CreateCategoryParams{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (h *categoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categorySvc.ListCategories(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, categories)
}

func (h *categoryHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	category, err := h.categorySvc.GetCategory(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, category)
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *categoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[updateCategoryRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	err = h.categorySvc.UpdateCategory(r.Context(), id, repository.UpdateCategoryParams{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *categoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.categorySvc.DeleteCategory(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}
