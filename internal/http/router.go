package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the storefront API.
func NewRouter(contentH *ContentHandler, cartH *CartHandler, wishlistH *WishlistHandler, checkoutH *CheckoutHandler, requestTimeout time.Duration) *chi.Mux {
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
		r.Get("/products", contentH.ListProducts)
		r.Get("/products/{uid}", contentH.GetProduct)
		r.Get("/categories", contentH.ListCategories)
		r.Get("/content/{name}", contentH.GetPage)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.GetCart)
			r.Post("/items", cartH.AddItem)
			r.Put("/items/{id}", cartH.UpdateQuantity)
			r.Delete("/items/{id}", cartH.RemoveItem)
			r.Delete("/", cartH.ClearCart)
			r.Delete("/notification", cartH.DismissNotification)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistH.GetWishlist)
			r.Post("/items", wishlistH.AddItem)
			r.Post("/toggle", wishlistH.Toggle)
			r.Delete("/items/{id}", wishlistH.RemoveItem)
			r.Delete("/", wishlistH.Clear)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/form", checkoutH.GetForm)
			r.Post("/", checkoutH.Submit)
		})
	})

	return r
}
