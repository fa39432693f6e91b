package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ADSorokin/ShopMaster/internal/cart"
	"github.com/ADSorokin/ShopMaster/internal/catalog"
	"github.com/ADSorokin/ShopMaster/internal/coupon"
	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/ADSorokin/ShopMaster/internal/pricing"
	"github.com/ADSorokin/ShopMaster/internal/session"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cart    *cart.Cart
	catalog catalog.Catalog
	coupons *coupon.Validator
	calc    *pricing.Calculator
	session *session.Session
}

func NewCartHandler(c *cart.Cart, cat catalog.Catalog, v *coupon.Validator, calc *pricing.Calculator, s *session.Session) *CartHandler {
	return &CartHandler{
		cart:    c,
		catalog: cat,
		coupons: v,
		calc:    calc,
		session: s,
	}
}

type AddItemRequestDTO struct {
	ProductID       int64                  `json:"product_id"`
	Quantity        int                    `json:"quantity"`
	SelectedOptions domain.SelectedOptions `json:"selected_options,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Quantity        int                    `json:"quantity"`
	SelectedOptions domain.SelectedOptions `json:"selected_options,omitempty"`
}

type RemoveItemRequestDTO struct {
	SelectedOptions domain.SelectedOptions `json:"selected_options,omitempty"`
}

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type CartResponseDTO struct {
	Items  []domain.LineItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
}

type TotalsResponseDTO struct {
	domain.Totals
	Formatted map[string]string `json:"formatted"`
}

// GetCart returns the current line items with derived totals.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cart.Items()
	respondJSON(w, http.StatusOK, CartResponseDTO{
		Items:  items,
		Totals: h.calc.Totals(items, h.coupons.Applied()),
	})
}

// AddItem puts a product into the cart, merging with an existing line item
// when the (product, options) pair matches.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "product_not_found", "no such product")
			return
		}
		respondError(w, http.StatusInternalServerError, "catalog_error", err.Error())
		return
	}

	h.cart.AddItem(p, req.Quantity, req.SelectedOptions)
	h.session.MarkViewed(p.ID)
	respondJSON(w, http.StatusCreated, CartResponseDTO{
		Items:  h.cart.Items(),
		Totals: h.calc.Totals(h.cart.Items(), h.coupons.Applied()),
	})
}

// UpdateQuantity sets a line item's quantity; zero removes the item.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.cart.UpdateQuantity(productID, req.Quantity, req.SelectedOptions); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
			return
		}
		respondError(w, http.StatusInternalServerError, "cart_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, CartResponseDTO{
		Items:  h.cart.Items(),
		Totals: h.calc.Totals(h.cart.Items(), h.coupons.Applied()),
	})
}

// RemoveItem deletes a line item. Removing an absent item still succeeds.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	var req RemoveItemRequestDTO
	if r.Body != nil {
		// Options are optional; a missing body means the empty option set.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	h.cart.RemoveItem(productID, req.SelectedOptions)
	respondJSON(w, http.StatusOK, CartResponseDTO{
		Items:  h.cart.Items(),
		Totals: h.calc.Totals(h.cart.Items(), h.coupons.Applied()),
	})
}

// Clear empties the cart and unsets the applied coupon, which is stale once
// the items it applied to are gone.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	h.coupons.Reset()
	respondJSON(w, http.StatusOK, CartResponseDTO{
		Items:  h.cart.Items(),
		Totals: h.calc.Totals(nil, nil),
	})
}

// Totals returns the numeric breakdown plus display strings in the
// requested currency.
func (h *CartHandler) Totals(w http.ResponseWriter, r *http.Request) {
	code := currencyFromRequest(r)
	if _, err := pricing.FormatWithCurrency(0, code); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_currency", err.Error())
		return
	}

	totals := h.calc.Totals(h.cart.Items(), h.coupons.Applied())
	respondJSON(w, http.StatusOK, TotalsResponseDTO{
		Totals: totals,
		Formatted: map[string]string{
			"subtotal": pricing.Format(totals.Subtotal, code),
			"discount": pricing.Format(totals.Discount, code),
			"shipping": pricing.Format(totals.Shipping, code),
			"total":    pricing.Format(totals.Total, code),
		},
	})
}

// ApplyCoupon validates a promotional code and applies it to the cart.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "code is required")
		return
	}

	applied, err := h.coupons.Apply(req.Code)
	if err != nil {
		if errors.Is(err, coupon.ErrInvalidCoupon) {
			h.session.Notify("error", notifyInvalidCoupon(langFromRequest(r)), "error")
			respondError(w, http.StatusUnprocessableEntity, "invalid_coupon", "code not found or not valid")
			return
		}
		respondError(w, http.StatusInternalServerError, "coupon_error", err.Error())
		return
	}

	h.session.Notify("coupon", notifyCouponApplied(langFromRequest(r), applied.Code), "success")
	respondJSON(w, http.StatusOK, CartResponseDTO{
		Items:  h.cart.Items(),
		Totals: h.calc.Totals(h.cart.Items(), &applied),
	})
}

// RemoveCoupon unsets the applied coupon.
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	h.coupons.Reset()
	respondJSON(w, http.StatusOK, CartResponseDTO{
		Items:  h.cart.Items(),
		Totals: h.calc.Totals(h.cart.Items(), nil),
	})
}

func notifyCouponApplied(lang domain.Language, code string) string {
	if lang == domain.LangEN {
		return "Coupon " + code + " applied!"
	}
	return "Промокод " + code + " применен!"
}

func notifyInvalidCoupon(lang domain.Language) string {
	if lang == domain.LangEN {
		return "Invalid coupon code"
	}
	return "Неверный промокод"
}
