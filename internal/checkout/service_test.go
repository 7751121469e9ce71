package checkout

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afkcodes/storefront/internal/cart"
	"github.com/afkcodes/storefront/internal/domain"
)

// nullStore satisfies cart.Store; checkout tests do not care about persistence.
type nullStore struct{}

func (nullStore) Load(ctx context.Context) ([]byte, error)    { return nil, cart.ErrNoSavedCart }
func (nullStore) Save(ctx context.Context, blob []byte) error { return nil }

func testService(t *testing.T, delay time.Duration) (*Service, *cart.Manager) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := cart.NewManager(nullStore{}, logger)
	return NewService(manager, logger, delay), manager
}

func product(id int, price, discount float64) domain.Product {
	return domain.Product{
		ID:                 id,
		Title:              "Test Product",
		Price:              price,
		DiscountPercentage: discount,
		Stock:              10,
	}
}

func TestService_Methods(t *testing.T) {
	svc, _ := testService(t, 0)

	methods := svc.Methods()
	require.Len(t, methods, 2)
	assert.Equal(t, "credit_card", methods[0].ID)
	assert.Equal(t, "digital_wallet", methods[1].ID)
}

func TestService_Process(t *testing.T) {
	t.Run("places an order and clears the cart", func(t *testing.T) {
		svc, manager := testService(t, 10*time.Millisecond)
		manager.AddItem(product(1, 100, 10))
		manager.AddItem(product(1, 100, 10))

		order, err := svc.Process(context.Background(), "credit_card")
		require.NoError(t, err)

		assert.NotEmpty(t, order.ID)
		assert.Equal(t, "credit_card", order.PaymentMethod)
		assert.False(t, order.PlacedAt.IsZero())
		require.Len(t, order.Lines, 1)
		assert.Equal(t, 2, order.Lines[0].Quantity)
		assert.True(t, order.Summary.Total.Equal(decimal.NewFromInt(180)),
			"total = %s, want 180", order.Summary.Total)

		assert.Empty(t, manager.Items())
	})

	t.Run("unknown payment method", func(t *testing.T) {
		svc, manager := testService(t, 0)
		manager.AddItem(product(1, 100, 0))

		_, err := svc.Process(context.Background(), "cash_on_delivery")
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.EINVALID))
		assert.Len(t, manager.Items(), 1)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, _ := testService(t, 0)

		_, err := svc.Process(context.Background(), "credit_card")
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.EINVALID))
	})

	t.Run("canceled context", func(t *testing.T) {
		svc, manager := testService(t, time.Minute)
		manager.AddItem(product(1, 100, 0))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Process(ctx, "credit_card")
		require.Error(t, err)

		// The cart survives a canceled checkout
		assert.Len(t, manager.Items(), 1)
	})

	t.Run("waits out the processing delay", func(t *testing.T) {
		svc, manager := testService(t, 50*time.Millisecond)
		manager.AddItem(product(1, 100, 0))

		start := time.Now()
		_, err := svc.Process(context.Background(), "digital_wallet")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})
}

func TestService_Order(t *testing.T) {
	svc, manager := testService(t, 0)
	manager.AddItem(product(1, 100, 0))

	placed, err := svc.Process(context.Background(), "credit_card")
	require.NoError(t, err)

	t.Run("returns a placed order", func(t *testing.T) {
		got, err := svc.Order(placed.ID)
		require.NoError(t, err)
		assert.Equal(t, placed.ID, got.ID)
		assert.True(t, got.Summary.Total.Equal(placed.Summary.Total))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Order("does-not-exist")
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ENOTFOUND))
	})
}
