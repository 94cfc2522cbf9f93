package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

type productHandler struct {
	*Service
}

func newProductHandler(s *Service) *productHandler {
	return &productHandler{Service: s}
}

func (h *productHandler) register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/low-stock", h.lowStock)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Get("/{id}/stock", h.stockLevel)
	r.Post("/{id}/adjust-stock", h.adjustStock)
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Sku         string  `json:"sku" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	CostPrice   float64 `json:"cost_price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	CategoryID  *int64  `json:"category_id"`
	SupplierID  *int64  `json:"supplier_id"`
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decode[createProductRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.productSvc.AddProduct(r.Context(), service.AddProductParams{
		Name:        body.Name,
		Sku:         body.Sku,
		Description: body.Description,
		Price:       body.Price,
		CostPrice:   body.CostPrice,
		Quantity:    body.Quantity,
		MinQuantity: body.MinQuantity,
		CategoryID:  body.CategoryID,
		SupplierID:  body.SupplierID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	var err error
	var products any

	if query := r.URL.Query().Get("q"); query != "" {
		products, err = h.productSvc.SearchProducts(r.Context(), query)
	} else {
		products, err = h.productSvc.ListProducts(r.Context())
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, products)
}

func (h *productHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, product)
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	CostPrice   *float64 `json:"cost_price" validate:"omitempty,gte=0"`
	MinQuantity *int     `json:"min_quantity" validate:"omitempty,gte=0"`
	CategoryID  *int64   `json:"category_id"`
	SupplierID  *int64   `json:"supplier_id"`
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[updateProductRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	err = h.productSvc.UpdateProduct(r.Context(), id, repository.UpdateProductParams{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		CostPrice:   body.CostPrice,
		MinQuantity: body.MinQuantity,
		CategoryID:  body.CategoryID,
		SupplierID:  body.SupplierID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *productHandler) lowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.ListLowStock(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, products)
}

type stockLevelResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (h *productHandler) stockLevel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	quantity, err := h.inventorySvc.StockLevel(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, stockLevelResponse{ProductID: id, Quantity: quantity})
}

type adjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func (h *productHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	body, err := decode[adjustStockRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.inventorySvc.AdjustStock(r.Context(), id, body.Delta); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}
