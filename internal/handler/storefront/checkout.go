package storefront

import (
	"log/slog"
	"net/http"

	"github.com/afkcodes/storefront/internal/checkout"
	"github.com/afkcodes/storefront/internal/handler"
)

// CheckoutHandler serves the simulated checkout flow.
type CheckoutHandler struct {
	checkout *checkout.Service
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkoutService *checkout.Service, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkoutService,
		logger:   logger,
	}
}

// processRequest selects the payment method for the simulated payment.
type processRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// Methods handles GET /checkout/methods
func (h *CheckoutHandler) Methods(w http.ResponseWriter, r *http.Request) {
	handler.WriteData(w, h.checkout.Methods())
}

// Process handles POST /checkout
func (h *CheckoutHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := handler.DecodeValid(r, &req); err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	order, err := h.checkout.Process(r.Context(), req.PaymentMethod)
	if err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	handler.WriteData(w, order)
}

// Confirmation handles GET /orders/{id}
func (h *CheckoutHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.Order(r.PathValue("id"))
	if err != nil {
		handler.WriteError(w, h.logger, err)
		return
	}

	handler.WriteData(w, order)
}
