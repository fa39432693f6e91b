package http

import (
	"net/http"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/chat"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the storefront routes.
func NewRouter(
	products *ProductHandler,
	carts *CartHandler,
	checkouts *CheckoutHandler,
	orders *OrdersHandler,
	sessions *SessionHandler,
	hub *chat.Hub,
	requestTimeout time.Duration,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Get("/{id}", products.Get)
		})
		r.Get("/categories", products.Categories)
		r.Get("/pickup-points", products.PickupPoints)
		r.Post("/search/voice", products.VoiceSearch)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", carts.GetCart)
			r.Delete("/", carts.Clear)
			r.Get("/totals", carts.Totals)
			r.Post("/items", carts.AddItem)
			r.Put("/items/{product_id}", carts.UpdateQuantity)
			r.Delete("/items/{product_id}", carts.RemoveItem)
			r.Post("/coupon", carts.ApplyCoupon)
			r.Delete("/coupon", carts.RemoveCoupon)
		})

		r.Post("/checkout", checkouts.PlaceOrder)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orders.List)
			r.Get("/{id}", orders.Get)
			r.Put("/{id}/status", orders.UpdateStatus)
		})

		r.Post("/favorites/{id}/toggle", sessions.ToggleFavorite)
		r.Get("/favorites", sessions.Favorites)
		r.Post("/compare/{id}/toggle", sessions.ToggleCompare)
		r.Get("/compare", sessions.Compare)
		r.Get("/viewed", sessions.Viewed)
		r.Get("/notifications", sessions.Notifications)
	})

	r.Get("/ws/chat", hub.ServeWS)

	return r
}
