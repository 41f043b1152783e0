package integrity

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/nvasilev/storefront/internal/cart/domain"
	catalogdomain "github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	orderdomain "github.com/nvasilev/storefront/internal/order/domain"
	reviewdomain "github.com/nvasilev/storefront/internal/review/domain"
	userdomain "github.com/nvasilev/storefront/internal/user/domain"
	wishlistdomain "github.com/nvasilev/storefront/internal/wishlist/domain"
	"github.com/nvasilev/storefront/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("integrity-test", "error", false)
	os.Exit(m.Run())
}

func newTestCascader() (*Cascader, *memStore, *Repos) {
	store := newMemStore()
	repos := store.repos()
	return NewCascader(&memRunner{repos: repos}), store, repos
}

// seedUserTree creates a user owning one order with an item, a review, an
// address, a wish list with an item and a cart with an item.
func seedUserTree(t *testing.T, r *Repos, email string) *userdomain.User {
	t.Helper()

	user := &userdomain.User{Username: email, Email: email, PasswordHash: "x"}
	require.NoError(t, r.Users.Create(user))

	product := &catalogdomain.Product{Name: "widget", Price: 10, Stock: 100, BrandID: 1, CategoryID: 1}
	require.NoError(t, r.Products.Create(product))

	order := &orderdomain.Order{UserID: user.ID}
	require.NoError(t, r.Orders.Create(order))
	require.NoError(t, r.OrderItems.Create(&orderdomain.OrderItem{
		OrderID: order.ID, ProductID: product.ID, Quantity: 2, TotalPrice: 20,
	}))

	require.NoError(t, r.Reviews.Create(&reviewdomain.Review{
		UserID: user.ID, ProductID: product.ID, Rating: 4,
	}))
	require.NoError(t, r.Addresses.Create(&userdomain.Address{
		UserID: user.ID, Street: "Main 1", City: "Sofia",
	}))

	list := &wishlistdomain.WishList{UserID: user.ID}
	require.NoError(t, r.WishLists.Create(list))
	require.NoError(t, r.WishListItems.Create(&wishlistdomain.WishListItem{
		WishListID: list.ID, ProductID: product.ID,
	}))

	cart := &cartdomain.Cart{UserID: user.ID}
	require.NoError(t, r.Carts.Create(cart))
	require.NoError(t, r.CartItems.Create(&cartdomain.CartItem{
		CartID: cart.ID, ProductID: product.ID, Quantity: 1, TotalPrice: 10,
	}))

	return user
}

func TestCascader_DeleteUser_RemovesOwnedRecords(t *testing.T) {
	cascader, store, repos := newTestCascader()

	victim := seedUserTree(t, repos, "victim@example.com")
	other := seedUserTree(t, repos, "other@example.com")

	deleted, err := cascader.DeleteUser(context.Background(), victim.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, victim.ID, deleted.ID)

	_, err = repos.Users.FindByID(victim.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	orders, err := repos.Orders.FindByUserID(victim.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	reviews, err := repos.Reviews.FindByUserID(victim.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	addresses, err := repos.Addresses.FindByUserID(victim.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)

	_, err = repos.WishLists.FindByUserID(victim.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repos.Carts.FindByUserID(victim.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// No orphaned line items survive anywhere.
	assert.Empty(t, filterOrderItemsByOwner(store, victim.ID))

	// The other user's records are untouched.
	_, err = repos.Users.FindByID(other.ID)
	assert.NoError(t, err)
	otherOrders, err := repos.Orders.FindByUserID(other.ID)
	require.NoError(t, err)
	assert.Len(t, otherOrders, 1)
	_, err = repos.Carts.FindByUserID(other.ID)
	assert.NoError(t, err)
}

func filterOrderItemsByOwner(store *memStore, userID uint) []orderdomain.OrderItem {
	orderIDs := make(map[uint]struct{})
	for _, o := range store.orders {
		if o.UserID == userID {
			orderIDs[o.ID] = struct{}{}
		}
	}
	var out []orderdomain.OrderItem
	for _, item := range store.orderItems {
		if _, ok := orderIDs[item.OrderID]; ok {
			out = append(out, item)
		}
	}
	return out
}

func TestCascader_DeleteUser_MissingUser(t *testing.T) {
	cascader, _, _ := newTestCascader()

	deleted, err := cascader.DeleteUser(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, deleted)
}

func TestCascader_DeleteUser_WithoutCartOrWishList(t *testing.T) {
	cascader, _, repos := newTestCascader()

	user := &userdomain.User{Username: "bare", Email: "bare@example.com", PasswordHash: "x"}
	require.NoError(t, repos.Users.Create(user))

	deleted, err := cascader.DeleteUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)
}

type failingReviews struct {
	reviewdomain.ReviewRepository
	err error
}

func (f *failingReviews) DeleteByUserID(uint) error { return f.err }

func TestCascader_DeleteUser_FailedStageNamesStage(t *testing.T) {
	store := newMemStore()
	repos := store.repos()
	boom := errors.New("connection reset")
	repos.Reviews = &failingReviews{ReviewRepository: repos.Reviews, err: boom}
	cascader := NewCascader(&memRunner{repos: repos})

	user := seedUserTree(t, repos, "victim@example.com")

	_, err := cascader.DeleteUser(context.Background(), user.ID)
	require.Error(t, err)

	var cascadeErr *apperr.CascadeError
	require.ErrorAs(t, err, &cascadeErr)
	assert.Equal(t, StageReviews, cascadeErr.Stage)
	assert.ErrorIs(t, err, boom)
}

// seedProductTree creates one brand and category, two products under them,
// and a user whose cart and order reference both products.
func seedProductTree(t *testing.T, r *Repos) (target, survivor *catalogdomain.Product, cart *cartdomain.Cart, order *orderdomain.Order) {
	t.Helper()

	brand := &catalogdomain.Brand{Name: "acme"}
	require.NoError(t, r.Brands.Create(brand))
	category := &catalogdomain.Category{Name: "tools"}
	require.NoError(t, r.Categories.Create(category))

	target = &catalogdomain.Product{Name: "hammer", Price: 10, Stock: 5, BrandID: brand.ID, CategoryID: category.ID}
	require.NoError(t, r.Products.Create(target))
	survivor = &catalogdomain.Product{Name: "saw", Price: 25, Stock: 5, BrandID: brand.ID, CategoryID: category.ID}
	require.NoError(t, r.Products.Create(survivor))

	user := &userdomain.User{Username: "buyer", Email: "buyer@example.com", PasswordHash: "x"}
	require.NoError(t, r.Users.Create(user))

	cart = &cartdomain.Cart{UserID: user.ID, ItemsCount: 3, TotalPrice: 45}
	require.NoError(t, r.Carts.Create(cart))
	require.NoError(t, r.CartItems.Create(&cartdomain.CartItem{
		CartID: cart.ID, ProductID: target.ID, Quantity: 2, TotalPrice: 20,
	}))
	require.NoError(t, r.CartItems.Create(&cartdomain.CartItem{
		CartID: cart.ID, ProductID: survivor.ID, Quantity: 1, TotalPrice: 25,
	}))

	order = &orderdomain.Order{UserID: user.ID, ItemsCount: 2, TotalPrice: 35}
	require.NoError(t, r.Orders.Create(order))
	require.NoError(t, r.OrderItems.Create(&orderdomain.OrderItem{
		OrderID: order.ID, ProductID: target.ID, Quantity: 1, TotalPrice: 10,
	}))
	require.NoError(t, r.OrderItems.Create(&orderdomain.OrderItem{
		OrderID: order.ID, ProductID: survivor.ID, Quantity: 1, TotalPrice: 25,
	}))

	list := &wishlistdomain.WishList{UserID: user.ID}
	require.NoError(t, r.WishLists.Create(list))
	require.NoError(t, r.WishListItems.Create(&wishlistdomain.WishListItem{
		WishListID: list.ID, ProductID: target.ID,
	}))
	require.NoError(t, r.Reviews.Create(&reviewdomain.Review{
		UserID: user.ID, ProductID: target.ID, Rating: 5,
	}))

	return target, survivor, cart, order
}

func TestCascader_DeleteProduct_ReconcilesParents(t *testing.T) {
	cascader, _, repos := newTestCascader()
	target, survivor, cart, order := seedProductTree(t, repos)

	deleted, err := cascader.DeleteProduct(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.ID, deleted.ID)

	_, err = repos.Products.FindByID(target.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	items, err := repos.CartItems.FindByProductID(target.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
	reviews, err := repos.Reviews.FindByProductID(target.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// The cart and order keep the surviving line and their aggregates now
	// match it exactly.
	gotCart, err := repos.Carts.FindByID(cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotCart.ItemsCount)
	assert.InDelta(t, 25.0, gotCart.TotalPrice, 1e-9)

	gotOrder, err := repos.Orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotOrder.ItemsCount)
	assert.InDelta(t, 25.0, gotOrder.TotalPrice, 1e-9)

	_, err = repos.Products.FindByID(survivor.ID)
	assert.NoError(t, err)
}

func TestCascader_DeleteProduct_Missing(t *testing.T) {
	cascader, _, _ := newTestCascader()

	deleted, err := cascader.DeleteProduct(context.Background(), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, deleted)
}

func TestCascader_DeleteBrand_CascadesThroughProducts(t *testing.T) {
	cascader, _, repos := newTestCascader()
	target, survivor, cart, _ := seedProductTree(t, repos)

	brandID := target.BrandID
	deleted, err := cascader.DeleteBrand(context.Background(), brandID)
	require.NoError(t, err)
	assert.Equal(t, brandID, deleted.ID)

	// Both products belonged to the brand, so both are gone and the cart
	// aggregates collapse to zero.
	_, err = repos.Products.FindByID(target.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repos.Products.FindByID(survivor.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	gotCart, err := repos.Carts.FindByID(cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotCart.ItemsCount)
	assert.Zero(t, gotCart.TotalPrice)
}

func TestCascader_DeleteCategory_CascadesThroughProducts(t *testing.T) {
	cascader, _, repos := newTestCascader()
	target, _, _, order := seedProductTree(t, repos)

	deleted, err := cascader.DeleteCategory(context.Background(), target.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, target.CategoryID, deleted.ID)

	products, err := repos.Products.FindByCategoryID(target.CategoryID)
	require.NoError(t, err)
	assert.Empty(t, products)

	gotOrder, err := repos.Orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotOrder.ItemsCount)
	assert.Zero(t, gotOrder.TotalPrice)
}

func TestCascader_DeleteCart(t *testing.T) {
	cascader, _, repos := newTestCascader()
	user := seedUserTree(t, repos, "buyer@example.com")

	cart, err := repos.Carts.FindByUserID(user.ID)
	require.NoError(t, err)

	deleted, err := cascader.DeleteCart(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, deleted.ID)

	_, err = repos.Carts.FindByID(cart.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	items, err := repos.CartItems.FindByCartID(cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCascader_DeleteOrder_KeepsStock(t *testing.T) {
	cascader, _, repos := newTestCascader()
	target, _, _, order := seedProductTree(t, repos)

	before, err := repos.Products.FindByID(target.ID)
	require.NoError(t, err)

	deleted, err := cascader.DeleteOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, deleted.ID)

	_, err = repos.Orders.FindByID(order.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	items, err := repos.OrderItems.FindByOrderID(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Deleting an order never restocks.
	after, err := repos.Products.FindByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Stock, after.Stock)
}

func TestCascader_DeleteWishList(t *testing.T) {
	cascader, _, repos := newTestCascader()
	user := seedUserTree(t, repos, "saver@example.com")

	list, err := repos.WishLists.FindByUserID(user.ID)
	require.NoError(t, err)

	deleted, err := cascader.DeleteWishList(context.Background(), list.ID)
	require.NoError(t, err)
	assert.Equal(t, list.ID, deleted.ID)

	items, err := repos.WishListItems.FindByWishListID(list.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCascader_DeleteAllUsers(t *testing.T) {
	cascader, store, repos := newTestCascader()
	seedUserTree(t, repos, "a@example.com")
	seedUserTree(t, repos, "b@example.com")

	require.NoError(t, cascader.DeleteAllUsers(context.Background()))

	count, err := repos.Users.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.orders)
	assert.Empty(t, store.orderItems)
	assert.Empty(t, store.carts)
	assert.Empty(t, store.cartItems)
	assert.Empty(t, store.wishLists)
	assert.Empty(t, store.wishListItems)
	assert.Empty(t, store.addresses)
	assert.Empty(t, store.reviews)

	// Products are not user-owned and survive.
	assert.NotEmpty(t, store.products)
}

func TestCascader_DeleteAllProducts_ZeroesSurvivingAggregates(t *testing.T) {
	cascader, store, repos := newTestCascader()
	_, _, cart, order := seedProductTree(t, repos)

	require.NoError(t, cascader.DeleteAllProducts(context.Background()))

	assert.Empty(t, store.products)
	assert.Empty(t, store.cartItems)
	assert.Empty(t, store.orderItems)
	assert.Empty(t, store.wishListItems)
	assert.Empty(t, store.reviews)

	gotCart, err := repos.Carts.FindByID(cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotCart.ItemsCount)
	assert.Zero(t, gotCart.TotalPrice)

	gotOrder, err := repos.Orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotOrder.ItemsCount)
	assert.Zero(t, gotOrder.TotalPrice)
}

func TestCascader_DeleteAllBrands(t *testing.T) {
	cascader, store, repos := newTestCascader()

	brand := &catalogdomain.Brand{Name: "acme"}
	require.NoError(t, repos.Brands.Create(brand))
	require.NoError(t, repos.Products.Create(&catalogdomain.Product{
		Name: "hammer", Price: 10, BrandID: brand.ID, CategoryID: 1,
	}))

	require.NoError(t, cascader.DeleteAllBrands(context.Background()))
	assert.Empty(t, store.brands)
	assert.Empty(t, store.products)
}

func TestCascader_DeleteAllCategories(t *testing.T) {
	cascader, store, repos := newTestCascader()
	seedProductTree(t, repos)

	require.NoError(t, cascader.DeleteAllCategories(context.Background()))
	assert.Empty(t, store.categories)
	assert.Empty(t, store.products)
}

func TestCascader_DeleteAllCarts(t *testing.T) {
	cascader, store, repos := newTestCascader()
	seedUserTree(t, repos, "a@example.com")
	seedUserTree(t, repos, "b@example.com")

	require.NoError(t, cascader.DeleteAllCarts(context.Background()))
	assert.Empty(t, store.carts)
	assert.Empty(t, store.cartItems)
	assert.NotEmpty(t, store.users)
}

func TestCascader_DeleteAllWishLists(t *testing.T) {
	cascader, store, repos := newTestCascader()
	seedUserTree(t, repos, "a@example.com")

	require.NoError(t, cascader.DeleteAllWishLists(context.Background()))
	assert.Empty(t, store.wishLists)
	assert.Empty(t, store.wishListItems)
}

type failingOrderItems struct {
	orderdomain.OrderItemRepository
	err error
}

func (f *failingOrderItems) DeleteAll() error { return f.err }

func TestCascader_DeleteAllOrders_FailedStageNamesStage(t *testing.T) {
	store := newMemStore()
	repos := store.repos()
	boom := errors.New("disk full")
	repos.OrderItems = &failingOrderItems{OrderItemRepository: repos.OrderItems, err: boom}
	cascader := NewCascader(&memRunner{repos: repos})

	err := cascader.DeleteAllOrders(context.Background())
	require.Error(t, err)

	var cascadeErr *apperr.CascadeError
	require.ErrorAs(t, err, &cascadeErr)
	assert.Equal(t, StageOrderItems, cascadeErr.Stage)
}
