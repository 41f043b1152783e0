// Package integrity owns the two engines that keep cross-entity state
// consistent: the cascade orchestrator, which deletes an aggregate root
// together with its full dependent subtree, and the aggregate maintainer,
// which rewrites derived count/total fields after line-item mutations. The
// backing store enforces neither on its own.
package integrity

import (
	"context"

	"gorm.io/gorm"

	cartdomain "github.com/nvasilev/storefront/internal/cart/domain"
	cartrepo "github.com/nvasilev/storefront/internal/cart/repository"
	catalogdomain "github.com/nvasilev/storefront/internal/catalog/domain"
	catalogrepo "github.com/nvasilev/storefront/internal/catalog/repository"
	orderdomain "github.com/nvasilev/storefront/internal/order/domain"
	orderrepo "github.com/nvasilev/storefront/internal/order/repository"
	reviewdomain "github.com/nvasilev/storefront/internal/review/domain"
	reviewrepo "github.com/nvasilev/storefront/internal/review/repository"
	userdomain "github.com/nvasilev/storefront/internal/user/domain"
	userrepo "github.com/nvasilev/storefront/internal/user/repository"
	wishlistdomain "github.com/nvasilev/storefront/internal/wishlist/domain"
	wishlistrepo "github.com/nvasilev/storefront/internal/wishlist/repository"
)

// Repos bundles every repository the integrity engines touch. Inside a
// transaction all repositories are bound to the same underlying unit of
// work, so a failing stage rolls the whole sequence back.
type Repos struct {
	Users         userdomain.UserRepository
	Admins        userdomain.AdminRepository
	Addresses     userdomain.AddressRepository
	Products      catalogdomain.ProductRepository
	Brands        catalogdomain.BrandRepository
	Categories    catalogdomain.CategoryRepository
	Carts         cartdomain.CartRepository
	CartItems     cartdomain.CartItemRepository
	Orders        orderdomain.OrderRepository
	OrderItems    orderdomain.OrderItemRepository
	WishLists     wishlistdomain.WishListRepository
	WishListItems wishlistdomain.WishListItemRepository
	Reviews       reviewdomain.ReviewRepository
}

// Runner executes fn against a consistent repository set, committing only
// when fn returns nil.
type Runner interface {
	RunInTransaction(ctx context.Context, fn func(r *Repos) error) error
}

// GormRunner implements Runner over a gorm database handle.
type GormRunner struct {
	db *gorm.DB
}

// NewGormRunner creates a Runner backed by db.
func NewGormRunner(db *gorm.DB) *GormRunner {
	return &GormRunner{db: db}
}

// RunInTransaction opens a transaction and rebinds every repository to it.
func (g *GormRunner) RunInTransaction(ctx context.Context, fn func(r *Repos) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormRepos(tx))
	})
}

// NewGormRepos constructs the full repository set over one gorm handle.
func NewGormRepos(db *gorm.DB) *Repos {
	return &Repos{
		Users:         userrepo.NewGormUserRepository(db),
		Admins:        userrepo.NewGormAdminRepository(db),
		Addresses:     userrepo.NewGormAddressRepository(db),
		Products:      catalogrepo.NewGormProductRepository(db),
		Brands:        catalogrepo.NewGormBrandRepository(db),
		Categories:    catalogrepo.NewGormCategoryRepository(db),
		Carts:         cartrepo.NewGormCartRepository(db),
		CartItems:     cartrepo.NewGormCartItemRepository(db),
		Orders:        orderrepo.NewGormOrderRepository(db),
		OrderItems:    orderrepo.NewGormOrderItemRepository(db),
		WishLists:     wishlistrepo.NewGormWishListRepository(db),
		WishListItems: wishlistrepo.NewGormWishListItemRepository(db),
		Reviews:       reviewrepo.NewGormReviewRepository(db),
	}
}
