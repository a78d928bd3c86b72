package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zafahi/tralashop/internal/adapter/storage"
	"github.com/zafahi/tralashop/internal/core/service"
)

const ordersKey = "test_orders"

func TestCheckoutPlace(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := service.NewCart(store, cartKey)
		checkout := service.NewCheckout(cart, store, ordersKey)

		_, err := checkout.Place()
		require.ErrorIs(t, err, service.ErrCartEmpty)
		assert.Empty(t, checkout.Orders())
	})

	t.Run("SnapshotsAndClears", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := service.NewCart(store, cartKey)
		cart.Add(testProduct(1, 699.99), 2)
		cart.Add(testProduct(2, 100), 1)
		checkout := service.NewCheckout(cart, store, ordersKey)

		order, err := checkout.Place()
		require.NoError(t, err)

		assert.NotEmpty(t, order.Reference)
		require.Len(t, order.Lines, 2)
		assert.Equal(t, 2, order.Lines[0].Quantity)
		assert.InDelta(t, 2*699.99, order.Lines[0].LineTotal, 1e-9)
		assert.InDelta(t, 2*699.99+100, order.Total, 1e-9)
		assert.False(t, order.PlacedAt.IsZero())

		assert.True(t, cart.IsEmpty(), "cart cleared after checkout")
	})

	t.Run("HistoryAccumulates", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := service.NewCart(store, cartKey)
		checkout := service.NewCheckout(cart, store, ordersKey)

		cart.Add(testProduct(1, 10), 1)
		first, err := checkout.Place()
		require.NoError(t, err)

		cart.Add(testProduct(2, 20), 1)
		second, err := checkout.Place()
		require.NoError(t, err)

		orders := checkout.Orders()
		require.Len(t, orders, 2)
		assert.Equal(t, first.Reference, orders[0].Reference)
		assert.Equal(t, second.Reference, orders[1].Reference)
		assert.NotEqual(t, first.Reference, second.Reference)
	})

	t.Run("HistorySurvivesReconstruction", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := service.NewCart(store, cartKey)
		cart.Add(testProduct(1, 10), 1)

		_, err := service.NewCheckout(cart, store, ordersKey).Place()
		require.NoError(t, err)

		fresh := service.NewCheckout(service.NewCart(store, cartKey), store, ordersKey)
		assert.Len(t, fresh.Orders(), 1)
	})
}
