package command

import (
	"context"
	"errors"

	"github.com/nvasilev/storefront/internal/cart/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
)

// AddCartItemCommand represents the command to add a product to a user's
// cart.
type AddCartItemCommand struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

func (cmd AddCartItemCommand) validate() error {
	if cmd.UserID == 0 {
		return apperr.Invalid("user_id", "is required")
	}
	if cmd.ProductID == 0 {
		return apperr.Invalid("product_id", "is required")
	}
	if cmd.Quantity <= 0 {
		return apperr.Invalid("quantity", "must be positive")
	}
	return nil
}

// AddCartItemHandler adds a line to the user's cart, creating the cart on
// first use. The item captures the product's unit price at entry time and
// the cart aggregates are recomputed in the same transaction.
type AddCartItemHandler struct {
	runner integrity.Runner
}

// NewAddCartItemHandler creates a new add cart item handler.
func NewAddCartItemHandler(runner integrity.Runner) *AddCartItemHandler {
	return &AddCartItemHandler{runner: runner}
}

// Handle executes the add cart item command.
func (h *AddCartItemHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*domain.Cart, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	var result *domain.Cart
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		product, err := r.Products.FindByID(cmd.ProductID)
		if err != nil {
			return err
		}

		cart, err := r.Carts.FindByUserID(cmd.UserID)
		switch {
		case err == nil:
		case errors.Is(err, apperr.ErrNotFound):
			if _, err := r.Users.FindByID(cmd.UserID); err != nil {
				return err
			}
			cart = &domain.Cart{UserID: cmd.UserID}
			if err := r.Carts.Create(cart); err != nil {
				return err
			}
		default:
			return err
		}

		items, err := r.CartItems.FindByCartID(cart.ID)
		if err != nil {
			return err
		}

		var line *domain.CartItem
		for i := range items {
			if items[i].ProductID == cmd.ProductID {
				line = &items[i]
				break
			}
		}

		if line != nil {
			line.Quantity += cmd.Quantity
			line.TotalPrice = float64(line.Quantity) * product.Price
			if err := r.CartItems.Update(line); err != nil {
				return err
			}
		} else {
			line = &domain.CartItem{
				CartID:     cart.ID,
				ProductID:  cmd.ProductID,
				Quantity:   cmd.Quantity,
				TotalPrice: float64(cmd.Quantity) * product.Price,
			}
			if err := r.CartItems.Create(line); err != nil {
				return err
			}
		}

		if err := integrity.ReconcileCart(r, cart.ID); err != nil {
			return err
		}
		result, err = r.Carts.FindByID(cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateCartItemCommand represents the command to change a line's
// quantity.
type UpdateCartItemCommand struct {
	ItemID   uint
	Quantity int
}

// UpdateCartItemHandler rewrites a cart line. Quantity zero removes the
// line. The cart aggregates follow in the same transaction.
type UpdateCartItemHandler struct {
	runner integrity.Runner
}

// NewUpdateCartItemHandler creates a new update cart item handler.
func NewUpdateCartItemHandler(runner integrity.Runner) *UpdateCartItemHandler {
	return &UpdateCartItemHandler{runner: runner}
}

// Handle executes the update cart item command.
func (h *UpdateCartItemHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) (*domain.Cart, error) {
	if cmd.ItemID == 0 {
		return nil, apperr.Invalid("item_id", "is required")
	}
	if cmd.Quantity < 0 {
		return nil, apperr.Invalid("quantity", "must not be negative")
	}

	var result *domain.Cart
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		line, err := r.CartItems.FindByID(cmd.ItemID)
		if err != nil {
			return err
		}

		if cmd.Quantity == 0 {
			if err := r.CartItems.Delete(line.ID); err != nil {
				return err
			}
		} else {
			product, err := r.Products.FindByID(line.ProductID)
			if err != nil {
				return err
			}
			line.Quantity = cmd.Quantity
			line.TotalPrice = float64(cmd.Quantity) * product.Price
			if err := r.CartItems.Update(line); err != nil {
				return err
			}
		}

		if err := integrity.ReconcileCart(r, line.CartID); err != nil {
			return err
		}
		result, err = r.Carts.FindByID(line.CartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveCartItemCommand represents the command to drop one cart line.
type RemoveCartItemCommand struct {
	ItemID uint
}

// RemoveCartItemHandler removes a line and recomputes the cart aggregates
// in the same transaction.
type RemoveCartItemHandler struct {
	runner integrity.Runner
}

// NewRemoveCartItemHandler creates a new remove cart item handler.
func NewRemoveCartItemHandler(runner integrity.Runner) *RemoveCartItemHandler {
	return &RemoveCartItemHandler{runner: runner}
}

// Handle executes the remove cart item command.
func (h *RemoveCartItemHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (*domain.Cart, error) {
	if cmd.ItemID == 0 {
		return nil, apperr.Invalid("item_id", "is required")
	}

	var result *domain.Cart
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		line, err := r.CartItems.FindByID(cmd.ItemID)
		if err != nil {
			return err
		}
		if err := r.CartItems.Delete(line.ID); err != nil {
			return err
		}
		if err := integrity.ReconcileCart(r, line.CartID); err != nil {
			return err
		}
		result, err = r.Carts.FindByID(line.CartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ClearCartCommand represents the command to delete a user's cart along
// with its items.
type ClearCartCommand struct {
	UserID uint
}

// ClearCartHandler routes cart deletion through the cascade engine.
type ClearCartHandler struct {
	carts    domain.CartRepository
	cascader *integrity.Cascader
}

// NewClearCartHandler creates a new clear cart handler.
func NewClearCartHandler(carts domain.CartRepository, cascader *integrity.Cascader) *ClearCartHandler {
	return &ClearCartHandler{carts: carts, cascader: cascader}
}

// Handle executes the clear cart command.
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if cmd.UserID == 0 {
		return apperr.Invalid("user_id", "is required")
	}
	cart, err := h.carts.FindByUserID(cmd.UserID)
	if err != nil {
		return err
	}
	_, err = h.cascader.DeleteCart(ctx, cart.ID)
	return err
}
