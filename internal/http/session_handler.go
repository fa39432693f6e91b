package http

import (
	"net/http"
	"strconv"

	"github.com/ADSorokin/ShopMaster/internal/catalog"
	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/ADSorokin/ShopMaster/internal/session"
	"github.com/go-chi/chi/v5"
)

type SessionHandler struct {
	session *session.Session
	catalog catalog.Catalog
}

func NewSessionHandler(s *session.Session, c catalog.Catalog) *SessionHandler {
	return &SessionHandler{session: s, catalog: c}
}

type ToggleResponseDTO struct {
	ProductID int64 `json:"product_id"`
	Active    bool  `json:"active"`
}

// ToggleFavorite flips a product in or out of the favorites list.
func (h *SessionHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, ToggleResponseDTO{ProductID: id, Active: h.session.ToggleFavorite(id)})
}

// Favorites resolves the favorited ids against the catalog.
func (h *SessionHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.resolve(h.session.Favorites()))
}

// ToggleCompare flips a product in or out of the comparison list.
func (h *SessionHandler) ToggleCompare(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, ToggleResponseDTO{ProductID: id, Active: h.session.ToggleCompare(id)})
}

// Compare resolves the comparison ids against the catalog.
func (h *SessionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.resolve(h.session.Compare()))
}

// Viewed returns the recently viewed products, most recent first.
func (h *SessionHandler) Viewed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.resolve(h.session.Viewed()))
}

// Notifications returns the feed, newest first.
func (h *SessionHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Notifications())
}

func (h *SessionHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return 0, false
	}
	if _, err := h.catalog.Get(id); err != nil {
		respondError(w, http.StatusNotFound, "product_not_found", "no such product")
		return 0, false
	}
	return id, true
}

// resolve drops ids of products that left the catalog.
func (h *SessionHandler) resolve(ids []int64) []domain.Product {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, err := h.catalog.Get(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}
