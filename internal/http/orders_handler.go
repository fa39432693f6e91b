package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/ADSorokin/ShopMaster/internal/order"
	"github.com/go-chi/chi/v5"
)

type OrdersHandler struct {
	orders order.Store
}

func NewOrdersHandler(store order.Store) *OrdersHandler {
	return &OrdersHandler{orders: store}
}

type UpdateStatusRequestDTO struct {
	Status domain.OrderStatus `json:"status"`
}

// List returns the order history, newest first.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.List())
}

// Get returns a single order.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "order_not_found", "no such order")
			return
		}
		respondError(w, http.StatusInternalServerError, "orders_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// UpdateStatus moves an order along its lifecycle. This is the fulfillment
// collaborator's entry point; the storefront itself only creates orders.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "status is required")
		return
	}

	err := h.orders.UpdateStatus(chi.URLParam(r, "id"), req.Status)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order_not_found", "no such order")
	case errors.Is(err, order.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", "status transition not allowed")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "orders_error", err.Error())
	default:
		o, _ := h.orders.Get(chi.URLParam(r, "id"))
		respondJSON(w, http.StatusOK, o)
	}
}
