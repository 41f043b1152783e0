package integrity

import (
	"context"

	"github.com/nvasilev/storefront/pkg/logger"
)

// Bulk cascades follow the same stage ordering as the per-row cascades,
// but each stage is one batch against the whole collection.

// DeleteAllUsers removes every user together with all user-owned records.
func (c *Cascader) DeleteAllUsers(ctx context.Context) error {
	return c.bulk(ctx, "users", []bulkStage{
		{StageOrderItems, func(r *Repos) error { return r.OrderItems.DeleteAll() }},
		{StageOrders, func(r *Repos) error { return r.Orders.DeleteAll() }},
		{StageReviews, func(r *Repos) error { return r.Reviews.DeleteAll() }},
		{StageAddresses, func(r *Repos) error { return r.Addresses.DeleteAll() }},
		{StageWishListItems, func(r *Repos) error { return r.WishListItems.DeleteAll() }},
		{StageWishList, func(r *Repos) error { return r.WishLists.DeleteAll() }},
		{StageCartItems, func(r *Repos) error { return r.CartItems.DeleteAll() }},
		{StageCart, func(r *Repos) error { return r.Carts.DeleteAll() }},
		{StageUser, func(r *Repos) error { return r.Users.DeleteAll() }},
	})
}

// DeleteAllProducts removes every product and all rows referencing any
// product, then zeroes the aggregates of the surviving carts and orders.
func (c *Cascader) DeleteAllProducts(ctx context.Context) error {
	return c.bulk(ctx, "products", productBulkStages())
}

// DeleteAllBrands removes every brand; since each product belongs to a
// brand, the product stages run first.
func (c *Cascader) DeleteAllBrands(ctx context.Context) error {
	stages := productBulkStages()
	stages = append(stages, bulkStage{StageBrand, func(r *Repos) error { return r.Brands.DeleteAll() }})
	return c.bulk(ctx, "brands", stages)
}

// DeleteAllCategories removes every category, product stages first.
func (c *Cascader) DeleteAllCategories(ctx context.Context) error {
	stages := productBulkStages()
	stages = append(stages, bulkStage{StageCategory, func(r *Repos) error { return r.Categories.DeleteAll() }})
	return c.bulk(ctx, "categories", stages)
}

// DeleteAllOrders removes every order and its items.
func (c *Cascader) DeleteAllOrders(ctx context.Context) error {
	return c.bulk(ctx, "orders", []bulkStage{
		{StageOrderItems, func(r *Repos) error { return r.OrderItems.DeleteAll() }},
		{StageOrder, func(r *Repos) error { return r.Orders.DeleteAll() }},
	})
}

// DeleteAllCarts removes every cart and its items.
func (c *Cascader) DeleteAllCarts(ctx context.Context) error {
	return c.bulk(ctx, "carts", []bulkStage{
		{StageCartItems, func(r *Repos) error { return r.CartItems.DeleteAll() }},
		{StageCart, func(r *Repos) error { return r.Carts.DeleteAll() }},
	})
}

// DeleteAllWishLists removes every wish list and its items.
func (c *Cascader) DeleteAllWishLists(ctx context.Context) error {
	return c.bulk(ctx, "wish_lists", []bulkStage{
		{StageWishListItems, func(r *Repos) error { return r.WishListItems.DeleteAll() }},
		{StageWishList, func(r *Repos) error { return r.WishLists.DeleteAll() }},
	})
}

type bulkStage struct {
	name string
	fn   func(r *Repos) error
}

func productBulkStages() []bulkStage {
	return []bulkStage{
		{StageWishListItems, func(r *Repos) error { return r.WishListItems.DeleteAll() }},
		{StageOrderItems, func(r *Repos) error { return r.OrderItems.DeleteAll() }},
		{StageCartItems, func(r *Repos) error { return r.CartItems.DeleteAll() }},
		{StageReviews, func(r *Repos) error { return r.Reviews.DeleteAll() }},
		{StageProduct, func(r *Repos) error { return r.Products.DeleteAll() }},
		{StageReconcile, reconcileAllParents},
	}
}

// reconcileAllParents zeroes the derived fields of every surviving cart
// and order after a bulk line-item wipe.
func reconcileAllParents(r *Repos) error {
	carts, err := r.Carts.FindAll()
	if err != nil {
		return err
	}
	for _, cart := range carts {
		if err := ReconcileCart(r, cart.ID); err != nil {
			return err
		}
	}

	orders, err := r.Orders.FindAll(0, 0)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if err := ReconcileOrder(r, order.ID); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cascader) bulk(ctx context.Context, kind string, stages []bulkStage) error {
	ctx, span := tracer.Start(ctx, "cascade.delete_all_"+kind)
	defer span.End()

	err := c.runner.RunInTransaction(ctx, func(r *Repos) error {
		for _, s := range stages {
			name, fn := s.name, s.fn
			if err := stage(ctx, name, func() error { return fn(r) }); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx).Err(err).Str("root_kind", kind).Msg("bulk cascade rolled back")
		return err
	}

	logger.Info(ctx).Str("root_kind", kind).Msg("bulk cascade completed")
	return nil
}
