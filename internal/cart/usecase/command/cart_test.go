package command

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvasilev/storefront/internal/cart/domain"
	catalogdomain "github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	userdomain "github.com/nvasilev/storefront/internal/user/domain"
)

// The fakes implement only the methods these handlers reach; anything else
// panics through the embedded nil interface.

type fakeUsers struct {
	userdomain.UserRepository
	users map[uint]*userdomain.User
}

func (f *fakeUsers) FindByID(id uint) (*userdomain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	return u, nil
}

type fakeProducts struct {
	catalogdomain.ProductRepository
	products map[uint]*catalogdomain.Product
}

func (f *fakeProducts) FindByID(id uint) (*catalogdomain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

type fakeCarts struct {
	domain.CartRepository
	nextID uint
	carts  map[uint]*domain.Cart
}

func (f *fakeCarts) Create(c *domain.Cart) error {
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.carts[c.ID] = &cp
	return nil
}

func (f *fakeCarts) FindByID(id uint) (*domain.Cart, error) {
	c, ok := f.carts[id]
	if !ok {
		return nil, fmt.Errorf("cart %d: %w", id, apperr.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCarts) FindByUserID(userID uint) (*domain.Cart, error) {
	for _, c := range f.carts {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("cart for user %d: %w", userID, apperr.ErrNotFound)
}

func (f *fakeCarts) Update(c *domain.Cart) error {
	if _, ok := f.carts[c.ID]; !ok {
		return fmt.Errorf("cart %d: %w", c.ID, apperr.ErrNotFound)
	}
	cp := *c
	f.carts[c.ID] = &cp
	return nil
}

type fakeCartItems struct {
	domain.CartItemRepository
	nextID uint
	items  map[uint]*domain.CartItem
}

func (f *fakeCartItems) Create(item *domain.CartItem) error {
	f.nextID++
	item.ID = f.nextID
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartItems) FindByID(id uint) (*domain.CartItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("cart item %d: %w", id, apperr.ErrNotFound)
	}
	cp := *item
	return &cp, nil
}

func (f *fakeCartItems) FindByCartID(cartID uint) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range f.items {
		if item.CartID == cartID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCartItems) Update(item *domain.CartItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return fmt.Errorf("cart item %d: %w", item.ID, apperr.ErrNotFound)
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartItems) Delete(id uint) error {
	if _, ok := f.items[id]; !ok {
		return fmt.Errorf("cart item %d: %w", id, apperr.ErrNotFound)
	}
	delete(f.items, id)
	return nil
}

type stubRunner struct {
	repos *integrity.Repos
}

func (s *stubRunner) RunInTransaction(_ context.Context, fn func(r *integrity.Repos) error) error {
	return fn(s.repos)
}

type cartFixture struct {
	runner *stubRunner
	carts  *fakeCarts
	items  *fakeCartItems
}

func newCartFixture() *cartFixture {
	carts := &fakeCarts{carts: make(map[uint]*domain.Cart)}
	items := &fakeCartItems{items: make(map[uint]*domain.CartItem)}
	repos := &integrity.Repos{
		Users: &fakeUsers{users: map[uint]*userdomain.User{1: {ID: 1}}},
		Products: &fakeProducts{products: map[uint]*catalogdomain.Product{
			10: {ID: 10, Name: "hammer", Price: 12.5, Stock: 100},
			11: {ID: 11, Name: "saw", Price: 30, Stock: 100},
		}},
		Carts:     carts,
		CartItems: items,
	}
	return &cartFixture{runner: &stubRunner{repos: repos}, carts: carts, items: items}
}

func TestAddCartItemHandler_CreatesCartOnFirstUse(t *testing.T) {
	fix := newCartFixture()
	handler := NewAddCartItemHandler(fix.runner)

	cart, err := handler.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 10, Quantity: 2})
	require.NoError(t, err)
	require.NotNil(t, cart)

	assert.Equal(t, uint(1), cart.UserID)
	assert.Equal(t, 2, cart.ItemsCount)
	assert.InDelta(t, 25.0, cart.TotalPrice, 1e-9)

	items, err := fix.items.FindByCartID(cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 25.0, items[0].TotalPrice, 1e-9)
}

func TestAddCartItemHandler_MergesExistingLine(t *testing.T) {
	fix := newCartFixture()
	handler := NewAddCartItemHandler(fix.runner)

	_, err := handler.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 10, Quantity: 2})
	require.NoError(t, err)
	cart, err := handler.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 10, Quantity: 3})
	require.NoError(t, err)

	// One line with the summed quantity, repriced at the current unit
	// price.
	items, err := fix.items.FindByCartID(cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.InDelta(t, 62.5, items[0].TotalPrice, 1e-9)

	assert.Equal(t, 5, cart.ItemsCount)
	assert.InDelta(t, 62.5, cart.TotalPrice, 1e-9)
}

func TestAddCartItemHandler_SeparateLinesPerProduct(t *testing.T) {
	fix := newCartFixture()
	handler := NewAddCartItemHandler(fix.runner)

	_, err := handler.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 10, Quantity: 2})
	require.NoError(t, err)
	cart, err := handler.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 11, Quantity: 1})
	require.NoError(t, err)

	items, err := fix.items.FindByCartID(cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 3, cart.ItemsCount)
	assert.InDelta(t, 55.0, cart.TotalPrice, 1e-9)
}

func TestAddCartItemHandler_UnknownProduct(t *testing.T) {
	fix := newCartFixture()
	handler := NewAddCartItemHandler(fix.runner)

	_, err := handler.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, fix.carts.carts)
}

func TestAddCartItemHandler_UnknownUser(t *testing.T) {
	fix := newCartFixture()
	handler := NewAddCartItemHandler(fix.runner)

	_, err := handler.Handle(context.Background(), AddCartItemCommand{UserID: 9, ProductID: 10, Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddCartItemHandler_Validation(t *testing.T) {
	fix := newCartFixture()
	handler := NewAddCartItemHandler(fix.runner)

	for _, cmd := range []AddCartItemCommand{
		{ProductID: 10, Quantity: 1},
		{UserID: 1, Quantity: 1},
		{UserID: 1, ProductID: 10},
		{UserID: 1, ProductID: 10, Quantity: -1},
	} {
		_, err := handler.Handle(context.Background(), cmd)
		assert.True(t, apperr.IsValidation(err), "command %+v", cmd)
	}
}

func TestUpdateCartItemHandler_Reprices(t *testing.T) {
	fix := newCartFixture()
	add := NewAddCartItemHandler(fix.runner)
	update := NewUpdateCartItemHandler(fix.runner)

	_, err := add.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 10, Quantity: 2})
	require.NoError(t, err)

	cart, err := update.Handle(context.Background(), UpdateCartItemCommand{ItemID: 1, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, cart.ItemsCount)
	assert.InDelta(t, 50.0, cart.TotalPrice, 1e-9)
}

func TestUpdateCartItemHandler_ZeroQuantityRemovesLine(t *testing.T) {
	fix := newCartFixture()
	add := NewAddCartItemHandler(fix.runner)
	update := NewUpdateCartItemHandler(fix.runner)

	_, err := add.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 10, Quantity: 2})
	require.NoError(t, err)

	cart, err := update.Handle(context.Background(), UpdateCartItemCommand{ItemID: 1, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, cart.ItemsCount)
	assert.Zero(t, cart.TotalPrice)
	assert.Empty(t, fix.items.items)
}

func TestRemoveCartItemHandler_Handle(t *testing.T) {
	fix := newCartFixture()
	add := NewAddCartItemHandler(fix.runner)
	remove := NewRemoveCartItemHandler(fix.runner)

	_, err := add.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 10, Quantity: 2})
	require.NoError(t, err)
	_, err = add.Handle(context.Background(), AddCartItemCommand{UserID: 1, ProductID: 11, Quantity: 1})
	require.NoError(t, err)

	cart, err := remove.Handle(context.Background(), RemoveCartItemCommand{ItemID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemsCount)
	assert.InDelta(t, 30.0, cart.TotalPrice, 1e-9)
}

func TestRemoveCartItemHandler_MissingItem(t *testing.T) {
	fix := newCartFixture()
	remove := NewRemoveCartItemHandler(fix.runner)

	_, err := remove.Handle(context.Background(), RemoveCartItemCommand{ItemID: 42})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
