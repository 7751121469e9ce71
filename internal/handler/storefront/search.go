package storefront

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/afkcodes/storefront/internal/domain"
	"github.com/afkcodes/storefront/internal/handler"
)

// SearchHandler serves free-text catalog search.
type SearchHandler struct {
	catalog CatalogService
	logger  *slog.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(catalog CatalogService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// searchResult is the GET /search response payload.
type searchResult struct {
	Query    string           `json:"query"`
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// ServeHTTP handles GET /search?q=
// A blank query returns an empty result without touching the catalog.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		handler.WriteData(w, searchResult{Query: query, Products: []domain.Product{}})
		return
	}

	page, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	products := page.Products
	if products == nil {
		products = []domain.Product{}
	}

	handler.WriteData(w, searchResult{
		Query:    query,
		Products: products,
		Total:    page.Total,
	})
}
