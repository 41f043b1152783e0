package domain

import "time"

// Cart holds a user's line items. ItemsCount and TotalPrice are derived
// fields: the aggregate maintainer rewrites them after every item mutation
// so they always equal the sums over the live items.
type Cart struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	ItemsCount int       `json:"items_count" gorm:"not null;default:0"`
	TotalPrice float64   `json:"total_price" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem is one product line in a cart. TotalPrice captures quantity
// times the unit price at the time of entry and is rewritten on update.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CartID     uint      `json:"cart_id" gorm:"index;not null"`
	ProductID  uint      `json:"product_id" gorm:"index;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice float64   `json:"total_price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartRepository defines the contract for cart data access.
type CartRepository interface {
	Create(cart *Cart) error
	FindByID(id uint) (*Cart, error)
	FindByUserID(userID uint) (*Cart, error)
	FindAll() ([]Cart, error)
	Update(cart *Cart) error
	Delete(id uint) error
	DeleteAll() error
}

// CartItemRepository defines the contract for cart item data access.
type CartItemRepository interface {
	Create(item *CartItem) error
	FindByID(id uint) (*CartItem, error)
	FindByCartID(cartID uint) ([]CartItem, error)
	FindByProductID(productID uint) ([]CartItem, error)
	Update(item *CartItem) error
	Delete(id uint) error
	DeleteByCartID(cartID uint) error
	DeleteByProductID(productID uint) error
	DeleteAll() error
}
