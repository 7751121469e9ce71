package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afkcodes/storefront/internal/cart"
	"github.com/afkcodes/storefront/internal/domain"
)

// PaymentMethod is one entry in the simulated payment method picker.
type PaymentMethod struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Order is an immutable snapshot of the cart at the moment checkout
// completed. Orders live in memory only: there is no order backend, the
// confirmation screen is the sole consumer.
type Order struct {
	ID            string             `json:"id"`
	Lines         []domain.CartLine  `json:"lines"`
	Summary       domain.CartSummary `json:"summary"`
	PaymentMethod string             `json:"paymentMethod"`
	PlacedAt      time.Time          `json:"placedAt"`
}

// Service steps a cart through the simulated checkout flow: pick a payment
// method, wait out a fixed processing delay, and always succeed. The only
// real side effect is clearing the cart.
type Service struct {
	cart   *cart.Manager
	logger *slog.Logger
	delay  time.Duration

	mu     sync.Mutex
	orders map[string]*Order
}

// NewService creates a checkout service with the given processing delay.
func NewService(cartManager *cart.Manager, logger *slog.Logger, delay time.Duration) *Service {
	return &Service{
		cart:   cartManager,
		logger: logger,
		delay:  delay,
		orders: make(map[string]*Order),
	}
}

// Methods returns the available payment methods. The set is fixed; no
// payment provider sits behind any of them.
func (s *Service) Methods() []PaymentMethod {
	return []PaymentMethod{
		{
			ID:          "credit_card",
			Title:       "Credit Card",
			Description: "Pay with Visa, Mastercard, or American Express",
		},
		{
			ID:          "digital_wallet",
			Title:       "Digital Wallet",
			Description: "Apple Pay, Google Pay, or PayPal",
		},
	}
}

// Process runs the simulated payment. It rejects an unknown payment method
// or an empty cart, waits the processing delay, then snapshots the cart into
// an order and clears it. Payment itself cannot fail.
func (s *Service) Process(ctx context.Context, methodID string) (*Order, error) {
	if !s.validMethod(methodID) {
		return nil, domain.Invalid("checkout.process", "unknown payment method")
	}

	lines := s.cart.Items()
	if len(lines) == 0 {
		return nil, domain.Invalid("checkout.process", "cart is empty")
	}
	summary := domain.Summarize(lines)

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, domain.WrapError(ctx.Err(), domain.EINTERNAL, "checkout.process", "checkout canceled")
	}

	order := &Order{
		ID:            uuid.New().String(),
		Lines:         lines,
		Summary:       summary,
		PaymentMethod: methodID,
		PlacedAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.mu.Unlock()

	s.cart.Clear()

	s.logger.Info("order placed",
		"order_id", order.ID,
		"payment_method", methodID,
		"lines", len(lines),
		"total", summary.Total.String(),
	)

	return order, nil
}

// Order returns a previously placed order for the confirmation view.
func (s *Service) Order(id string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) validMethod(id string) bool {
	for _, m := range s.Methods() {
		if m.ID == id {
			return true
		}
	}
	return false
}
