package router

import (
	"net/http"

	"shopfront/internal/auth"
	"shopfront/internal/handler"
	"shopfront/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	authenticator *auth.Authenticator,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue routes: reads are public, mutations need an admin
	// session token.
	productRoutes := middleware.AdminAuth(authenticator, logger)(http.HandlerFunc(productHandler.Handle))
	mux.Handle("/api/products", productRoutes)
	mux.Handle("/api/products/", productRoutes)

	mux.HandleFunc("/api/orders", orderHandler.Handle)
	mux.HandleFunc("/api/orders/", orderHandler.Handle)

	mux.HandleFunc("/api/admin/login", adminHandler.Login)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
