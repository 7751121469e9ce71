package storefront

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afkcodes/storefront/internal/checkout"
	"github.com/afkcodes/storefront/internal/domain"
)

func testCheckoutHandler(t *testing.T) (*CheckoutHandler, *CartHandler) {
	t.Helper()
	manager := testManager()
	svc := checkout.NewService(manager, testLogger(), 0)
	return NewCheckoutHandler(svc, testLogger()), NewCartHandler(manager, testLogger())
}

func TestCheckoutHandler_Methods(t *testing.T) {
	h, _ := testCheckoutHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/checkout/methods", nil)
	rec := httptest.NewRecorder()
	h.Methods(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var methods []checkout.PaymentMethod
	decodeData(t, rec, &methods)
	require.Len(t, methods, 2)
	assert.Equal(t, "credit_card", methods[0].ID)
}

func TestCheckoutHandler_Process(t *testing.T) {
	process := func(h *CheckoutHandler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Process(rec, req)
		return rec
	}

	t.Run("places an order", func(t *testing.T) {
		h, cartHandler := testCheckoutHandler(t)
		addToCart(t, cartHandler, testProduct(1, 100, 10))

		rec := process(h, `{"paymentMethod": "credit_card"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var order checkout.Order
		decodeData(t, rec, &order)
		assert.NotEmpty(t, order.ID)
		assert.Equal(t, "credit_card", order.PaymentMethod)
		require.Len(t, order.Lines, 1)
	})

	t.Run("missing payment method", func(t *testing.T) {
		h, cartHandler := testCheckoutHandler(t)
		addToCart(t, cartHandler, testProduct(1, 100, 0))

		rec := process(h, `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.EINVALID, decodeError(t, rec).Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		h, _ := testCheckoutHandler(t)

		rec := process(h, `{"paymentMethod": "credit_card"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckoutHandler_Confirmation(t *testing.T) {
	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/orders/"+id, nil)
		req.SetPathValue("id", id)
		return req
	}

	t.Run("returns the placed order", func(t *testing.T) {
		h, cartHandler := testCheckoutHandler(t)
		addToCart(t, cartHandler, testProduct(1, 100, 0))

		req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{"paymentMethod": "digital_wallet"}`)))
		rec := httptest.NewRecorder()
		h.Process(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var placed checkout.Order
		decodeData(t, rec, &placed)

		rec = httptest.NewRecorder()
		h.Confirmation(rec, newRequest(placed.ID))

		require.Equal(t, http.StatusOK, rec.Code)
		var got checkout.Order
		decodeData(t, rec, &got)
		assert.Equal(t, placed.ID, got.ID)
	})

	t.Run("unknown order", func(t *testing.T) {
		h, _ := testCheckoutHandler(t)

		rec := httptest.NewRecorder()
		h.Confirmation(rec, newRequest("does-not-exist"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order not found", decodeError(t, rec).Message)
	})
}
