package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(id int, price, discount float64, qty int) CartLine {
	return CartLine{
		Product: Product{
			ID:                 id,
			Title:              "Test Product",
			Price:              price,
			DiscountPercentage: discount,
			Stock:              100,
		},
		Quantity: qty,
	}
}

func TestCartLine_DiscountedUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		expected string
	}{
		{name: "10 percent off 100", price: 100, discount: 10, expected: "90"},
		{name: "no discount", price: 50, discount: 0, expected: "50"},
		{name: "half off", price: 20, discount: 50, expected: "10"},
		{name: "fractional price", price: 19.99, discount: 12.96, expected: "17.399296"},
		{name: "full discount", price: 30, discount: 100, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := cartLine(1, tt.price, tt.discount, 1)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, line.DiscountedUnitPrice().Equal(expected),
				"DiscountedUnitPrice() = %s, want %s", line.DiscountedUnitPrice(), expected)
		})
	}
}

func TestCartLine_LineSubtotal(t *testing.T) {
	line := cartLine(1, 100, 10, 3)
	require.True(t, line.LineSubtotal().Equal(decimal.NewFromInt(270)),
		"LineSubtotal() = %s, want 270", line.LineSubtotal())
}

func TestSummarize(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		summary := Summarize(nil)
		assert.True(t, summary.Subtotal.IsZero())
		assert.True(t, summary.Total.IsZero())
	})

	t.Run("single discounted item", func(t *testing.T) {
		summary := Summarize([]CartLine{cartLine(1, 100, 10, 1)})
		assert.True(t, summary.Subtotal.Equal(decimal.NewFromInt(90)),
			"subtotal = %s, want 90", summary.Subtotal)
	})

	t.Run("quantity doubles the line", func(t *testing.T) {
		summary := Summarize([]CartLine{cartLine(1, 100, 10, 2)})
		assert.True(t, summary.Subtotal.Equal(decimal.NewFromInt(180)),
			"subtotal = %s, want 180", summary.Subtotal)
	})

	t.Run("mixed discounts", func(t *testing.T) {
		summary := Summarize([]CartLine{
			cartLine(1, 50, 0, 1),
			cartLine(2, 20, 50, 1),
		})
		assert.True(t, summary.Subtotal.Equal(decimal.NewFromInt(60)),
			"subtotal = %s, want 60", summary.Subtotal)
	})

	t.Run("total always equals subtotal", func(t *testing.T) {
		summary := Summarize([]CartLine{
			cartLine(1, 19.99, 12.5, 3),
			cartLine(2, 5.45, 0, 7),
		})
		assert.True(t, summary.Total.Equal(summary.Subtotal))
	})
}
