package storefront

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/afkcodes/storefront/internal/cart"
	"github.com/afkcodes/storefront/internal/domain"
	"github.com/afkcodes/storefront/internal/handler"
)

// CartHandler serves all cart endpoints. Mutations cannot fail from the
// client's perspective (storage errors are absorbed by the manager), so
// every mutation responds with the fresh cart view.
type CartHandler struct {
	cart   *cart.Manager
	logger *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartManager *cart.Manager, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:   cartManager,
		logger: logger,
	}
}

// cartView is the cart response payload: the ordered lines plus the derived
// pricing summary.
type cartView struct {
	Items   []domain.CartLine  `json:"items"`
	Summary domain.CartSummary `json:"summary"`
}

// addItemRequest carries the full product shape; the cart wraps whatever
// the catalog served without re-fetching it.
type addItemRequest struct {
	domain.Product
}

// updateQuantityRequest sets an absolute quantity for a line. Zero and
// negative values remove the line.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	handler.WriteData(w, h.view())
}

// Add handles POST /cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := handler.DecodeValid(r, &req); err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	h.cart.AddItem(req.Product)
	handler.WriteData(w, h.view())
}

// Update handles PUT /cart/items/{id}
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		handler.WriteError(w, h.logger, domain.Invalid("cart.update", "product id must be a positive integer"))
		return
	}

	var req updateQuantityRequest
	if err := handler.DecodeValid(r, &req); err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	h.cart.UpdateQuantity(id, req.Quantity)
	handler.WriteData(w, h.view())
}

// Remove handles DELETE /cart/items/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		handler.WriteError(w, h.logger, domain.Invalid("cart.remove", "product id must be a positive integer"))
		return
	}

	h.cart.RemoveItem(id)
	handler.WriteData(w, h.view())
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	handler.WriteData(w, h.view())
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:   h.cart.Items(),
		Summary: h.cart.Summary(),
	}
}
