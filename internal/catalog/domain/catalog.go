package domain

import (
	"time"

	"gorm.io/gorm"
)

// Placeholder image URLs written back when an uploaded image is removed.
const (
	DefaultProductImageURL = "/static/defaults/product.png"
	DefaultGroupImageURL   = "/static/defaults/group.png"
)

// Product represents a catalog product. Stock never goes below zero; order
// mutations debit it by the quantity delta.
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Price       float64        `json:"price" gorm:"not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	CategoryID  uint           `json:"category_id" gorm:"index;not null"`
	BrandID     uint           `json:"brand_id" gorm:"index;not null"`
	ImageURL    string         `json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if the product is in stock.
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// Brand is a named grouping owning zero or more products.
type Brand struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}

// Category is a named grouping owning zero or more products.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// ProductRepository defines the contract for product data access.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByBrandID(brandID uint) ([]Product, error)
	FindByCategoryID(categoryID uint) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	DeleteAll() error
	Count() (int64, error)
	// AdjustStock applies delta (positive or negative) to the stored stock
	// in a single update.
	AdjustStock(id uint, delta int) error
}

// BrandRepository defines the contract for brand data access.
type BrandRepository interface {
	Create(brand *Brand) error
	FindByID(id uint) (*Brand, error)
	FindAll() ([]Brand, error)
	Update(brand *Brand) error
	Delete(id uint) error
	DeleteAll() error
}

// CategoryRepository defines the contract for category data access.
type CategoryRepository interface {
	Create(category *Category) error
	FindByID(id uint) (*Category, error)
	FindAll() ([]Category, error)
	Update(category *Category) error
	Delete(id uint) error
	DeleteAll() error
}
