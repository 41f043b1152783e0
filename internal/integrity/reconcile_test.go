package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/nvasilev/storefront/internal/cart/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	orderdomain "github.com/nvasilev/storefront/internal/order/domain"
)

func TestReconcileCart_RecomputesFromItems(t *testing.T) {
	store := newMemStore()
	repos := store.repos()

	cart := &cartdomain.Cart{UserID: 1, ItemsCount: 99, TotalPrice: 999}
	require.NoError(t, repos.Carts.Create(cart))
	require.NoError(t, repos.CartItems.Create(&cartdomain.CartItem{
		CartID: cart.ID, ProductID: 10, Quantity: 2, TotalPrice: 20,
	}))
	require.NoError(t, repos.CartItems.Create(&cartdomain.CartItem{
		CartID: cart.ID, ProductID: 11, Quantity: 3, TotalPrice: 7.5,
	}))

	require.NoError(t, ReconcileCart(repos, cart.ID))

	got, err := repos.Carts.FindByID(cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.ItemsCount)
	assert.InDelta(t, 27.5, got.TotalPrice, 1e-9)
}

func TestReconcileCart_EmptyCartZeroes(t *testing.T) {
	store := newMemStore()
	repos := store.repos()

	cart := &cartdomain.Cart{UserID: 1, ItemsCount: 4, TotalPrice: 80}
	require.NoError(t, repos.Carts.Create(cart))

	require.NoError(t, ReconcileCart(repos, cart.ID))

	got, err := repos.Carts.FindByID(cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ItemsCount)
	assert.Zero(t, got.TotalPrice)
}

func TestReconcileCart_MissingCart(t *testing.T) {
	store := newMemStore()
	err := ReconcileCart(store.repos(), 123)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReconcileOrder_RecomputesFromItems(t *testing.T) {
	store := newMemStore()
	repos := store.repos()

	order := &orderdomain.Order{UserID: 1}
	require.NoError(t, repos.Orders.Create(order))
	require.NoError(t, repos.OrderItems.Create(&orderdomain.OrderItem{
		OrderID: order.ID, ProductID: 10, Quantity: 1, TotalPrice: 12,
	}))
	require.NoError(t, repos.OrderItems.Create(&orderdomain.OrderItem{
		OrderID: order.ID, ProductID: 11, Quantity: 4, TotalPrice: 48,
	}))

	require.NoError(t, ReconcileOrder(repos, order.ID))

	got, err := repos.Orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.ItemsCount)
	assert.InDelta(t, 60.0, got.TotalPrice, 1e-9)
}

func TestReconcileOrder_EmptyOrderZeroes(t *testing.T) {
	store := newMemStore()
	repos := store.repos()

	order := &orderdomain.Order{UserID: 1, ItemsCount: 2, TotalPrice: 30}
	require.NoError(t, repos.Orders.Create(order))

	require.NoError(t, ReconcileOrder(repos, order.ID))

	got, err := repos.Orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ItemsCount)
	assert.Zero(t, got.TotalPrice)
}
