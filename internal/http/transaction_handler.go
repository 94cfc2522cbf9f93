package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zionbm/zion/internal/apperr"
	"github.com/zionbm/zion/internal/service"
)

type transactionHandler struct {
	*Service
}

func newTransactionHandler(s *Service) *transactionHandler {
	return &transactionHandler{Service: s}
}

func (h *transactionHandler) register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/summary", h.summary)
}

type createTransactionRequest struct {
	Type          string  `json:"type" validate:"required,oneof=payment sale expense refund"`
	OrderID       *int64  `json:"order_id"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

func (h *transactionHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decode[createTransactionRequest](h.Service, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.financeSvc.RecordTransaction(r.Context(), service.RecordTransactionParams{
		Type:          body.Type,
		OrderID:       body.OrderID,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
		Notes:         body.Notes,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (h *transactionHandler) list(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.financeSvc.ListTransactions(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, transactions)
}

func (h *transactionHandler) summary(w http.ResponseWriter, r *http.Request) {
	start, err := timeQueryParam(r, "start")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	end, err := timeQueryParam(r, "end")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	summary, err := h.financeSvc.Summary(r.Context(), start, end)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, summary)
}

// timeQueryParam parses an optional RFC 3339 query parameter.
func timeQueryParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperr.ValidationErr.WrapParent(fmt.Errorf("parse %s query param: %w", name, err))
	}
	return &t, nil
}
