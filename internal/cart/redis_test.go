package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afkcodes/storefront/internal/domain"
)

func testRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "cart"), mr
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store, _ := testRedisStore(t)

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoSavedCart)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	blob := []byte(`[{"id":1,"title":"Phone","price":100,"discountPercentage":10,"quantity":2}]`)
	require.NoError(t, store.Save(ctx, blob))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestRedisStore_SaveReplaces(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []byte(`[{"id":1,"quantity":1}]`)))
	require.NoError(t, store.Save(ctx, []byte(`[]`)))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

// A cart built through one manager is restored intact by a fresh one,
// preserving order, ids, quantities, and prices.
func TestRedisStore_ManagerRestart(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	first := NewManager(store, testLogger())
	phone := testProduct(1)
	laptop := testProduct(2)
	laptop.Price = 1999.99
	laptop.DiscountPercentage = 5

	// Saves are asynchronous and not coalesced; wait each one out so the
	// snapshots land in mutation order.
	addAndWait := func(p domain.Product, wantLines, wantFirstQty int) {
		first.AddItem(p)
		require.Eventually(t, func() bool {
			blob, err := store.Load(ctx)
			if err != nil {
				return false
			}
			var lines []domain.CartLine
			if json.Unmarshal(blob, &lines) != nil {
				return false
			}
			return len(lines) == wantLines && lines[0].Quantity == wantFirstQty
		}, time.Second, 5*time.Millisecond)
	}

	addAndWait(phone, 1, 1)
	addAndWait(laptop, 2, 1)
	addAndWait(phone, 2, 2)

	second := NewManager(store, testLogger())
	second.Load(ctx)

	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, phone.ID, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, laptop.ID, items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, laptop.Price, items[1].Price)
	assert.True(t, first.Summary().Total.Equal(second.Summary().Total))
}
