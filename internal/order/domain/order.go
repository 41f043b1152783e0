package domain

import "time"

// Order statuses
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order belongs to one user. ItemsCount and TotalPrice are derived fields
// maintained by the aggregate maintainer, same as on Cart.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Status     string    `json:"status" gorm:"not null;default:'pending'"`
	ItemsCount int       `json:"items_count" gorm:"not null;default:0"`
	TotalPrice float64   `json:"total_price" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line in an order. Creating or growing an item
// debits product stock by the quantity delta; deleting one does not
// restock.
type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"index;not null"`
	ProductID  uint      `json:"product_id" gorm:"index;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice float64   `json:"total_price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderRepository defines the contract for order data access.
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindByUserID(userID uint) ([]Order, error)
	FindAll(limit, offset int) ([]Order, error)
	Update(order *Order) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
	DeleteAll() error
}

// OrderItemRepository defines the contract for order item data access.
type OrderItemRepository interface {
	Create(item *OrderItem) error
	FindByID(id uint) (*OrderItem, error)
	FindByOrderID(orderID uint) ([]OrderItem, error)
	FindByProductID(productID uint) ([]OrderItem, error)
	Update(item *OrderItem) error
	Delete(id uint) error
	DeleteByOrderID(orderID uint) error
	DeleteByProductID(productID uint) error
	DeleteAll() error
}
