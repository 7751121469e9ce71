package routes

import (
	"github.com/afkcodes/storefront/internal/router"
)

// RegisterStorefrontRoutes registers all endpoints the mobile client calls.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Home feed
	r.Get("/", deps.HomeHandler.ServeHTTP)

	// Product browsing
	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/{id}", deps.ProductHandler.Detail)
	r.Get("/categories", deps.ProductHandler.Categories)

	// Search
	r.Get("/search", deps.SearchHandler.ServeHTTP)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/items", deps.CartHandler.Add)
	r.Put("/cart/items/{id}", deps.CartHandler.Update)
	r.Delete("/cart/items/{id}", deps.CartHandler.Remove)
	r.Delete("/cart", deps.CartHandler.Clear)

	// Checkout flow
	r.Get("/checkout/methods", deps.CheckoutHandler.Methods)
	r.Post("/checkout", deps.CheckoutHandler.Process)
	r.Get("/orders/{id}", deps.CheckoutHandler.Confirmation)
}
