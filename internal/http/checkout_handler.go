package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ADSorokin/ShopMaster/internal/checkout"
	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/ADSorokin/ShopMaster/internal/session"
)

type CheckoutHandler struct {
	checkout *checkout.Service
	session  *session.Session
}

func NewCheckoutHandler(svc *checkout.Service, s *session.Session) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc, session: s}
}

type PlaceOrderRequestDTO struct {
	Delivery domain.Delivery `json:"delivery"`
	Payment  domain.Payment  `json:"payment"`
}

// PlaceOrder finalizes the checkout: the order is committed before the live
// cart is cleared, so the response always carries the purchased items.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delivery.Type == "" {
		req.Delivery.Type = "courier"
	}
	if req.Payment.Method == "" {
		req.Payment.Method = "card"
	}

	o, err := h.checkout.PlaceOrder(req.Delivery, req.Payment)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			respondError(w, http.StatusUnprocessableEntity, "empty_cart", "cart is empty")
			return
		}
		respondError(w, http.StatusInternalServerError, "checkout_error", err.Error())
		return
	}

	h.session.Notify("order", orderConfirmedMessage(langFromRequest(r), o.ID), "success")
	respondJSON(w, http.StatusCreated, o)
}

func orderConfirmedMessage(lang domain.Language, id string) string {
	short := id
	if len(short) > 6 {
		short = short[:6]
	}
	if lang == domain.LangEN {
		return "Order №" + short + " confirmed!"
	}
	return "Заказ №" + short + " оформлен!"
}
