package storefront

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/afkcodes/storefront/internal/domain"
	"github.com/afkcodes/storefront/internal/handler"
)

// CatalogService is the slice of the catalog client the storefront
// handlers consume.
type CatalogService interface {
	Products(ctx context.Context, limit, skip int) (*domain.ProductPage, error)
	Search(ctx context.Context, term string) (*domain.ProductPage, error)
	Product(ctx context.Context, id int) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// homeFeedSize is how many products the home feed shows below the carousel.
const homeFeedSize = 10

// HomeHandler serves the home feed: carousel promotions, trending search
// terms, and the first page of products.
type HomeHandler struct {
	catalog CatalogService
	logger  *slog.Logger
}

// NewHomeHandler creates a new home feed handler.
func NewHomeHandler(catalog CatalogService, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// homeFeed is the GET / response payload.
type homeFeed struct {
	Promotions []domain.Promotion `json:"promotions"`
	Trending   []string           `json:"trending"`
	Products   domain.ProductPage `json:"products"`
}

// ServeHTTP handles GET /
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.Products(r.Context(), homeFeedSize, 0)
	if err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	handler.WriteData(w, homeFeed{
		Promotions: domain.DefaultPromotions(),
		Trending:   domain.TrendingSearches(),
		Products:   *page,
	})
}
