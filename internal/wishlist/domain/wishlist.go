package domain

import "time"

// WishList holds a user's saved products, one list per user.
type WishList struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WishList) TableName() string {
	return "wish_lists"
}

// WishListItem references one product on a wish list.
type WishListItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	WishListID uint      `json:"wish_list_id" gorm:"index;not null"`
	ProductID  uint      `json:"product_id" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (WishListItem) TableName() string {
	return "wish_list_items"
}

// WishListRepository defines the contract for wish list data access.
type WishListRepository interface {
	Create(list *WishList) error
	FindByID(id uint) (*WishList, error)
	FindByUserID(userID uint) (*WishList, error)
	Delete(id uint) error
	DeleteAll() error
}

// WishListItemRepository defines the contract for wish list item data access.
type WishListItemRepository interface {
	Create(item *WishListItem) error
	FindByID(id uint) (*WishListItem, error)
	FindByWishListID(listID uint) ([]WishListItem, error)
	Delete(id uint) error
	DeleteByWishListID(listID uint) error
	DeleteByProductID(productID uint) error
	DeleteAll() error
}
