package storefront

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/afkcodes/storefront/internal/domain"
	"github.com/afkcodes/storefront/internal/handler"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ProductHandler serves product listing and detail endpoints straight from
// the remote catalog.
type ProductHandler struct {
	catalog CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// List handles GET /products?limit=&skip=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultPageLimit)
	if err != nil || limit < 1 || limit > maxPageLimit {
		handler.WriteError(w, h.logger, domain.Errorf(domain.EINVALID, "products.list",
			"limit must be an integer between 1 and %d", maxPageLimit))
		return
	}

	skip, err := queryInt(r, "skip", 0)
	if err != nil || skip < 0 {
		handler.WriteError(w, h.logger, domain.Invalid("products.list", "skip must be a non-negative integer"))
		return
	}

	page, err := h.catalog.Products(r.Context(), limit, skip)
	if err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	handler.WriteData(w, page)
}

// Detail handles GET /products/{id}
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		handler.WriteError(w, h.logger, domain.Invalid("products.detail", "product id must be a positive integer"))
		return
	}

	product, err := h.catalog.Product(r.Context(), id)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			handler.WriteError(w, h.logger, domain.ErrProductNotFound)
			return
		}
		handler.WriteError(w, h.logger, err)
		return
	}

	handler.WriteData(w, product)
}

// Categories handles GET /categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	handler.WriteData(w, categories)
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
