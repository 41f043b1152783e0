package query

import (
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/wishlist/domain"
)

// WishListView bundles a wish list with its items for read responses.
type WishListView struct {
	List  domain.WishList       `json:"wish_list"`
	Items []domain.WishListItem `json:"items"`
}

// GetWishListQuery represents the query to fetch a user's wish list.
type GetWishListQuery struct {
	UserID uint
}

// GetWishListHandler handles wish list lookups by user.
type GetWishListHandler struct {
	lists domain.WishListRepository
	items domain.WishListItemRepository
}

// NewGetWishListHandler creates a new get wish list handler.
func NewGetWishListHandler(lists domain.WishListRepository, items domain.WishListItemRepository) *GetWishListHandler {
	return &GetWishListHandler{lists: lists, items: items}
}

// Handle executes the get wish list query.
func (h *GetWishListHandler) Handle(q GetWishListQuery) (*WishListView, error) {
	if q.UserID == 0 {
		return nil, apperr.Invalid("user_id", "is required")
	}
	list, err := h.lists.FindByUserID(q.UserID)
	if err != nil {
		return nil, err
	}
	items, err := h.items.FindByWishListID(list.ID)
	if err != nil {
		return nil, err
	}
	return &WishListView{List: *list, Items: items}, nil
}
