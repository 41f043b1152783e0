package command

import (
	"context"
	"errors"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/wishlist/domain"
)

// AddWishListItemCommand represents the command to save a product on a
// user's wish list.
type AddWishListItemCommand struct {
	UserID    uint
	ProductID uint
}

// AddWishListItemHandler adds a product to the user's wish list, creating
// the list on first use. Adding the same product twice is a no-op.
type AddWishListItemHandler struct {
	runner integrity.Runner
}

// NewAddWishListItemHandler creates a new add wish list item handler.
func NewAddWishListItemHandler(runner integrity.Runner) *AddWishListItemHandler {
	return &AddWishListItemHandler{runner: runner}
}

// Handle executes the add wish list item command.
func (h *AddWishListItemHandler) Handle(ctx context.Context, cmd AddWishListItemCommand) (*domain.WishListItem, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Invalid("user_id", "is required")
	}
	if cmd.ProductID == 0 {
		return nil, apperr.Invalid("product_id", "is required")
	}

	var result *domain.WishListItem
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		if _, err := r.Products.FindByID(cmd.ProductID); err != nil {
			return err
		}

		list, err := r.WishLists.FindByUserID(cmd.UserID)
		switch {
		case err == nil:
		case errors.Is(err, apperr.ErrNotFound):
			if _, err := r.Users.FindByID(cmd.UserID); err != nil {
				return err
			}
			list = &domain.WishList{UserID: cmd.UserID}
			if err := r.WishLists.Create(list); err != nil {
				return err
			}
		default:
			return err
		}

		items, err := r.WishListItems.FindByWishListID(list.ID)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ProductID == cmd.ProductID {
				result = &items[i]
				return nil
			}
		}

		item := &domain.WishListItem{WishListID: list.ID, ProductID: cmd.ProductID}
		if err := r.WishListItems.Create(item); err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveWishListItemCommand represents the command to drop one saved
// product.
type RemoveWishListItemCommand struct {
	ItemID uint
}

// RemoveWishListItemHandler removes a single wish list entry.
type RemoveWishListItemHandler struct {
	repo domain.WishListItemRepository
}

// NewRemoveWishListItemHandler creates a new remove wish list item handler.
func NewRemoveWishListItemHandler(repo domain.WishListItemRepository) *RemoveWishListItemHandler {
	return &RemoveWishListItemHandler{repo: repo}
}

// Handle executes the remove wish list item command.
func (h *RemoveWishListItemHandler) Handle(cmd RemoveWishListItemCommand) error {
	if cmd.ItemID == 0 {
		return apperr.Invalid("item_id", "is required")
	}
	return h.repo.Delete(cmd.ItemID)
}

// ClearWishListCommand represents the command to delete a user's wish
// list along with its items.
type ClearWishListCommand struct {
	UserID uint
}

// ClearWishListHandler routes wish list deletion through the cascade
// engine.
type ClearWishListHandler struct {
	lists    domain.WishListRepository
	cascader *integrity.Cascader
}

// NewClearWishListHandler creates a new clear wish list handler.
func NewClearWishListHandler(lists domain.WishListRepository, cascader *integrity.Cascader) *ClearWishListHandler {
	return &ClearWishListHandler{lists: lists, cascader: cascader}
}

// Handle executes the clear wish list command.
func (h *ClearWishListHandler) Handle(ctx context.Context, cmd ClearWishListCommand) error {
	if cmd.UserID == 0 {
		return apperr.Invalid("user_id", "is required")
	}
	list, err := h.lists.FindByUserID(cmd.UserID)
	if err != nil {
		return err
	}
	_, err = h.cascader.DeleteWishList(ctx, list.ID)
	return err
}
