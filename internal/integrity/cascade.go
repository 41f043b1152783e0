package integrity

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	cartdomain "github.com/nvasilev/storefront/internal/cart/domain"
	catalogdomain "github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	orderdomain "github.com/nvasilev/storefront/internal/order/domain"
	userdomain "github.com/nvasilev/storefront/internal/user/domain"
	wishlistdomain "github.com/nvasilev/storefront/internal/wishlist/domain"
	"github.com/nvasilev/storefront/pkg/logger"
)

var tracer = otel.Tracer("integrity-cascade")

// Cascade stage names, surfaced in CascadeError so callers know exactly
// which step failed.
const (
	StageOrderItems    = "order_items"
	StageOrders        = "orders"
	StageReviews       = "reviews"
	StageAddresses     = "addresses"
	StageWishListItems = "wish_list_items"
	StageWishList      = "wish_list"
	StageCartItems     = "cart_items"
	StageCart          = "cart"
	StageUser          = "user"
	StageProduct       = "product"
	StageBrand         = "brand"
	StageCategory      = "category"
	StageOrder         = "order"
	StageReconcile     = "reconcile"
)

// Cascader deletes aggregate roots together with every record that
// transitively depends on them. Each cascade runs inside a single
// transaction: a failing stage aborts the rest and rolls back everything
// already deleted, so no orphans survive a partial failure.
type Cascader struct {
	runner Runner
}

// NewCascader creates a Cascader over runner.
func NewCascader(runner Runner) *Cascader {
	return &Cascader{runner: runner}
}

// recordCascadeFailure logs a failed cascade unless the root was simply
// absent.
func recordCascadeFailure(ctx context.Context, kind string, id uint, err error) {
	if errors.Is(err, apperr.ErrNotFound) {
		return
	}
	logger.Error(ctx).
		Err(err).
		Str("root_kind", kind).
		Uint("root_id", id).
		Msg("cascade delete rolled back")
}

// stage runs one cascade step under a span, wrapping any failure with the
// stage name.
func stage(ctx context.Context, name string, fn func() error) error {
	_, span := tracer.Start(ctx, "cascade."+name)
	defer span.End()

	if err := fn(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return apperr.CascadeFailed(name, err)
	}
	return nil
}

// DeleteUser removes a user and the user's orders, order items, reviews,
// addresses, wish list and cart, dependents first. Returns the deleted
// record, or ErrNotFound when no such user exists.
func (c *Cascader) DeleteUser(ctx context.Context, id uint) (*userdomain.User, error) {
	ctx, span := tracer.Start(ctx, "cascade.delete_user",
		trace.WithAttributes(attribute.Int("user.id", int(id))))
	defer span.End()

	var deleted *userdomain.User
	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		user, err := r.Users.FindByID(id)
		if err != nil {
			return err
		}

		orders, err := r.Orders.FindByUserID(id)
		if err != nil {
			return apperr.CascadeFailed(StageOrders, err)
		}
		for _, order := range orders {
			orderID := order.ID
			if err := stage(ctx, StageOrderItems, func() error {
				return r.OrderItems.DeleteByOrderID(orderID)
			}); err != nil {
				return err
			}
		}
		if err := stage(ctx, StageOrders, func() error {
			return r.Orders.DeleteByUserID(id)
		}); err != nil {
			return err
		}

		if err := stage(ctx, StageReviews, func() error {
			return r.Reviews.DeleteByUserID(id)
		}); err != nil {
			return err
		}

		if err := stage(ctx, StageAddresses, func() error {
			return r.Addresses.DeleteByUserID(id)
		}); err != nil {
			return err
		}

		// Point query: a user without a wish list is a no-op, not an error.
		list, err := r.WishLists.FindByUserID(id)
		switch {
		case err == nil:
			if err := stage(ctx, StageWishListItems, func() error {
				return r.WishListItems.DeleteByWishListID(list.ID)
			}); err != nil {
				return err
			}
			if err := stage(ctx, StageWishList, func() error {
				return r.WishLists.Delete(list.ID)
			}); err != nil {
				return err
			}
		case !errors.Is(err, apperr.ErrNotFound):
			return apperr.CascadeFailed(StageWishList, err)
		}

		// Same for the cart.
		cart, err := r.Carts.FindByUserID(id)
		switch {
		case err == nil:
			if err := stage(ctx, StageCartItems, func() error {
				return r.CartItems.DeleteByCartID(cart.ID)
			}); err != nil {
				return err
			}
			if err := stage(ctx, StageCart, func() error {
				return r.Carts.Delete(cart.ID)
			}); err != nil {
				return err
			}
		case !errors.Is(err, apperr.ErrNotFound):
			return apperr.CascadeFailed(StageCart, err)
		}

		if err := stage(ctx, StageUser, func() error {
			return r.Users.Delete(id)
		}); err != nil {
			return err
		}

		deleted = user
		return nil
	})
	if err != nil {
		recordCascadeFailure(ctx, "user", id, err)
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", id).Msg("user cascade delete completed")
	return deleted, nil
}

// DeleteProduct removes a product and every row referencing it: wish list
// items, order items, cart items and reviews. Carts and orders that lost
// line items are reconciled in the same transaction.
func (c *Cascader) DeleteProduct(ctx context.Context, id uint) (*catalogdomain.Product, error) {
	ctx, span := tracer.Start(ctx, "cascade.delete_product",
		trace.WithAttributes(attribute.Int("product.id", int(id))))
	defer span.End()

	var deleted *catalogdomain.Product
	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		product, err := r.Products.FindByID(id)
		if err != nil {
			return err
		}
		if err := deleteProductIn(ctx, r, id); err != nil {
			return err
		}
		deleted = product
		return nil
	})
	if err != nil {
		recordCascadeFailure(ctx, "product", id, err)
		return nil, err
	}

	logger.Info(ctx).Uint("product_id", id).Msg("product cascade delete completed")
	return deleted, nil
}

// deleteProductIn runs the product cascade stages inside an existing
// transaction. The brand and category cascades reuse it per product.
func deleteProductIn(ctx context.Context, r *Repos, id uint) error {
	// Collect parents whose aggregates must be recomputed after their
	// line items disappear.
	cartItems, err := r.CartItems.FindByProductID(id)
	if err != nil {
		return apperr.CascadeFailed(StageCartItems, err)
	}
	orderItems, err := r.OrderItems.FindByProductID(id)
	if err != nil {
		return apperr.CascadeFailed(StageOrderItems, err)
	}

	cartIDs := make(map[uint]struct{})
	for _, item := range cartItems {
		cartIDs[item.CartID] = struct{}{}
	}
	orderIDs := make(map[uint]struct{})
	for _, item := range orderItems {
		orderIDs[item.OrderID] = struct{}{}
	}

	if err := stage(ctx, StageWishListItems, func() error {
		return r.WishListItems.DeleteByProductID(id)
	}); err != nil {
		return err
	}
	if err := stage(ctx, StageOrderItems, func() error {
		return r.OrderItems.DeleteByProductID(id)
	}); err != nil {
		return err
	}
	if err := stage(ctx, StageCartItems, func() error {
		return r.CartItems.DeleteByProductID(id)
	}); err != nil {
		return err
	}
	if err := stage(ctx, StageReviews, func() error {
		return r.Reviews.DeleteByProductID(id)
	}); err != nil {
		return err
	}
	if err := stage(ctx, StageProduct, func() error {
		return r.Products.Delete(id)
	}); err != nil {
		return err
	}

	return stage(ctx, StageReconcile, func() error {
		for cartID := range cartIDs {
			if err := ReconcileCart(r, cartID); err != nil {
				return err
			}
		}
		for orderID := range orderIDs {
			if err := ReconcileOrder(r, orderID); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteBrand removes a brand and, recursively, every product belonging
// to it via the product cascade.
func (c *Cascader) DeleteBrand(ctx context.Context, id uint) (*catalogdomain.Brand, error) {
	ctx, span := tracer.Start(ctx, "cascade.delete_brand",
		trace.WithAttributes(attribute.Int("brand.id", int(id))))
	defer span.End()

	var deleted *catalogdomain.Brand
	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		brand, err := r.Brands.FindByID(id)
		if err != nil {
			return err
		}

		products, err := r.Products.FindByBrandID(id)
		if err != nil {
			return apperr.CascadeFailed(StageProduct, err)
		}
		for _, product := range products {
			if err := deleteProductIn(ctx, r, product.ID); err != nil {
				return err
			}
		}

		if err := stage(ctx, StageBrand, func() error {
			return r.Brands.Delete(id)
		}); err != nil {
			return err
		}

		deleted = brand
		return nil
	})
	if err != nil {
		recordCascadeFailure(ctx, "brand", id, err)
		return nil, err
	}
	return deleted, nil
}

// DeleteCategory removes a category and, recursively, every product
// belonging to it.
func (c *Cascader) DeleteCategory(ctx context.Context, id uint) (*catalogdomain.Category, error) {
	ctx, span := tracer.Start(ctx, "cascade.delete_category",
		trace.WithAttributes(attribute.Int("category.id", int(id))))
	defer span.End()

	var deleted *catalogdomain.Category
	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		category, err := r.Categories.FindByID(id)
		if err != nil {
			return err
		}

		products, err := r.Products.FindByCategoryID(id)
		if err != nil {
			return apperr.CascadeFailed(StageProduct, err)
		}
		for _, product := range products {
			if err := deleteProductIn(ctx, r, product.ID); err != nil {
				return err
			}
		}

		if err := stage(ctx, StageCategory, func() error {
			return r.Categories.Delete(id)
		}); err != nil {
			return err
		}

		deleted = category
		return nil
	})
	if err != nil {
		recordCascadeFailure(ctx, "category", id, err)
		return nil, err
	}
	return deleted, nil
}

// DeleteCart removes a cart and its items.
func (c *Cascader) DeleteCart(ctx context.Context, id uint) (*cartdomain.Cart, error) {
	var deleted *cartdomain.Cart
	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		cart, err := r.Carts.FindByID(id)
		if err != nil {
			return err
		}
		if err := stage(ctx, StageCartItems, func() error {
			return r.CartItems.DeleteByCartID(id)
		}); err != nil {
			return err
		}
		if err := stage(ctx, StageCart, func() error {
			return r.Carts.Delete(id)
		}); err != nil {
			return err
		}
		deleted = cart
		return nil
	})
	if err != nil {
		recordCascadeFailure(ctx, "cart", id, err)
		return nil, err
	}
	return deleted, nil
}

// DeleteOrder removes an order and its items. Stock is not restored.
func (c *Cascader) DeleteOrder(ctx context.Context, id uint) (*orderdomain.Order, error) {
	var deleted *orderdomain.Order
	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		order, err := r.Orders.FindByID(id)
		if err != nil {
			return err
		}
		if err := stage(ctx, StageOrderItems, func() error {
			return r.OrderItems.DeleteByOrderID(id)
		}); err != nil {
			return err
		}
		if err := stage(ctx, StageOrder, func() error {
			return r.Orders.Delete(id)
		}); err != nil {
			return err
		}
		deleted = order
		return nil
	})
	if err != nil {
		recordCascadeFailure(ctx, "order", id, err)
		return nil, err
	}
	return deleted, nil
}

// DeleteWishList removes a wish list and its items.
func (c *Cascader) DeleteWishList(ctx context.Context, id uint) (*wishlistdomain.WishList, error) {
	var deleted *wishlistdomain.WishList
	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		list, err := r.WishLists.FindByID(id)
		if err != nil {
			return err
		}
		if err := stage(ctx, StageWishListItems, func() error {
			return r.WishListItems.DeleteByWishListID(id)
		}); err != nil {
			return err
		}
		if err := stage(ctx, StageWishList, func() error {
			return r.WishLists.Delete(id)
		}); err != nil {
			return err
		}
		deleted = list
		return nil
	})
	if err != nil {
		recordCascadeFailure(ctx, "wish_list", id, err)
		return nil, err
	}
	return deleted, nil
}
