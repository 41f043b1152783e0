package query

import (
	"github.com/nvasilev/storefront/internal/cart/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
)

// CartView bundles a cart with its line items for read responses.
type CartView struct {
	Cart  domain.Cart       `json:"cart"`
	Items []domain.CartItem `json:"items"`
}

// GetCartQuery represents the query to fetch a user's cart.
type GetCartQuery struct {
	UserID uint
}

// GetCartHandler handles cart lookups by user.
type GetCartHandler struct {
	carts domain.CartRepository
	items domain.CartItemRepository
}

// NewGetCartHandler creates a new get cart handler.
func NewGetCartHandler(carts domain.CartRepository, items domain.CartItemRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts, items: items}
}

// Handle executes the get cart query.
func (h *GetCartHandler) Handle(q GetCartQuery) (*CartView, error) {
	if q.UserID == 0 {
		return nil, apperr.Invalid("user_id", "is required")
	}
	cart, err := h.carts.FindByUserID(q.UserID)
	if err != nil {
		return nil, err
	}
	items, err := h.items.FindByCartID(cart.ID)
	if err != nil {
		return nil, err
	}
	return &CartView{Cart: *cart, Items: items}, nil
}
