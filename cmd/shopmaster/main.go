package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/cart"
	"github.com/ADSorokin/ShopMaster/internal/catalog"
	"github.com/ADSorokin/ShopMaster/internal/chat"
	"github.com/ADSorokin/ShopMaster/internal/checkout"
	"github.com/ADSorokin/ShopMaster/internal/coupon"
	"github.com/ADSorokin/ShopMaster/internal/order"
	"github.com/ADSorokin/ShopMaster/internal/pricing"
	"github.com/ADSorokin/ShopMaster/internal/session"
	"github.com/ADSorokin/ShopMaster/internal/voice"

	h "github.com/ADSorokin/ShopMaster/internal/http"
)

type Config struct {
	HTTPPort         string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	ShippingFee      float64
	ChatReplyDelay   time.Duration
	VoiceListenDelay time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
		ShippingFee:      getEnvFloat("SHIPPING_FEE", pricing.DefaultShippingFee),
		ChatReplyDelay:   chat.DefaultReplyDelay,
		VoiceListenDelay: voice.DefaultListenDelay,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("invalid %s value %q, using default", key, value)
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	// In-memory application state, owned here and passed down explicitly.
	cat := catalog.NewMemoryCatalog(catalog.SeedProducts(), catalog.SeedCategories(), catalog.SeedPickupPoints())
	shoppingCart := cart.New()
	coupons := coupon.NewValidator(catalog.SeedCoupons())
	calc := pricing.NewCalculator(cfg.ShippingFee)
	orders := order.NewMemoryStore()
	sess := session.New()
	checkoutSvc := checkout.NewService(shoppingCart, coupons, calc, orders)

	hub := chat.NewHub(cfg.ChatReplyDelay)
	go hub.Run()
	defer hub.Stop()

	router := h.NewRouter(
		h.NewProductHandler(cat, sess, cfg.VoiceListenDelay),
		h.NewCartHandler(shoppingCart, cat, coupons, calc, sess),
		h.NewCheckoutHandler(checkoutSvc, sess),
		h.NewOrdersHandler(orders),
		h.NewSessionHandler(sess, cat),
		hub,
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("ShopMaster storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
