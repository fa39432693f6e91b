package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/catalog"
	"github.com/ADSorokin/ShopMaster/internal/session"
	"github.com/ADSorokin/ShopMaster/internal/voice"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalog     catalog.Catalog
	session     *session.Session
	listenDelay time.Duration
}

func NewProductHandler(c catalog.Catalog, s *session.Session, listenDelay time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog:     c,
		session:     s,
		listenDelay: listenDelay,
	}
}

// List returns the products matching the query filters: category, q (search
// term), brand, min_price, max_price, min_rating.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := catalog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
		Brand:    q.Get("brand"),
		Language: langFromRequest(r),
	}

	var err error
	if f.MinPrice, err = parseFloat(q.Get("min_price")); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_filter", "min_price must be a number")
		return
	}
	if f.MaxPrice, err = parseFloat(q.Get("max_price")); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_filter", "max_price must be a number")
		return
	}
	if f.MinRating, err = parseFloat(q.Get("min_rating")); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_filter", "min_rating must be a number")
		return
	}

	respondJSON(w, http.StatusOK, h.catalog.List(f))
}

// Get returns a single product and records the view.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	p, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "product_not_found", "no such product")
			return
		}
		respondError(w, http.StatusInternalServerError, "catalog_error", err.Error())
		return
	}

	h.session.MarkViewed(id)
	respondJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *ProductHandler) PickupPoints(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.PickupPoints())
}

// VoiceSearch runs the fake voice recognizer and returns the search term it
// "heard". The client can abort by dropping the connection.
func (h *ProductHandler) VoiceSearch(w http.ResponseWriter, r *http.Request) {
	term, err := voice.Simulate(r.Context(), langFromRequest(r), h.listenDelay)
	if err != nil {
		respondError(w, http.StatusRequestTimeout, "voice_cancelled", "voice search aborted")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"term": term})
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
