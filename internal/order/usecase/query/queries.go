package query

import (
	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/order/domain"
)

// OrderView bundles an order with its line items for read responses.
type OrderView struct {
	Order domain.Order       `json:"order"`
	Items []domain.OrderItem `json:"items"`
}

// GetOrderQuery represents the query to fetch one order with its items.
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles single order lookups.
type GetOrderHandler struct {
	orders domain.OrderRepository
	items  domain.OrderItemRepository
}

// NewGetOrderHandler creates a new get order handler.
func NewGetOrderHandler(orders domain.OrderRepository, items domain.OrderItemRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders, items: items}
}

// Handle executes the get order query.
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*OrderView, error) {
	if q.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	order, err := h.orders.FindByID(q.ID)
	if err != nil {
		return nil, err
	}
	items, err := h.items.FindByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderView{Order: *order, Items: items}, nil
}

// ListOrdersQuery represents the query to fetch orders, either for one
// user or a page across all users.
type ListOrdersQuery struct {
	UserID uint
	Limit  int
	Offset int
}

// ListOrdersHandler handles order listings.
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler.
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query.
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.Order, error) {
	if q.UserID != 0 {
		return h.repo.FindByUserID(q.UserID)
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return h.repo.FindAll(q.Limit, q.Offset)
}
