package routes

import (
	"github.com/afkcodes/storefront/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Home feed (carousel, trending, first product page)
	HomeHandler *storefront.HomeHandler

	// Products (list, detail, categories)
	ProductHandler *storefront.ProductHandler

	// Search
	SearchHandler *storefront.SearchHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout (methods, process, confirmation)
	CheckoutHandler *storefront.CheckoutHandler
}
