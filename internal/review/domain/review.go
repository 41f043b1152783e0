package domain

import "time"

// Review belongs to one user and one product.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewRepository defines the contract for review data access.
type ReviewRepository interface {
	Create(review *Review) error
	FindByID(id uint) (*Review, error)
	FindByProductID(productID uint) ([]Review, error)
	FindByUserID(userID uint) ([]Review, error)
	Update(review *Review) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
	DeleteByProductID(productID uint) error
	DeleteAll() error
}
