package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// RequestIDMiddleware adds a unique request ID to each request.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// langFromRequest reads the UI language from the ?lang query parameter.
// Anything other than "en" falls back to Russian, the storefront default.
func langFromRequest(r *http.Request) domain.Language {
	if r.URL.Query().Get("lang") == "en" {
		return domain.LangEN
	}
	return domain.LangRU
}

// currencyFromRequest reads the display currency, defaulting to rubles.
func currencyFromRequest(r *http.Request) string {
	if c := r.URL.Query().Get("currency"); c != "" {
		return c
	}
	return "RUB"
}
