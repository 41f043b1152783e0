package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nvasilev/storefront/internal/cart/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Create(cart *domain.Cart) error {
	if err := r.db.Create(cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("cart: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

func (r *GormCartRepository) FindByID(id uint) (*domain.Cart, error) {
	var cart domain.Cart
	if err := r.db.First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return &cart, nil
}

func (r *GormCartRepository) FindByUserID(userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %d: %w", userID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return &cart, nil
}

func (r *GormCartRepository) FindAll() ([]domain.Cart, error) {
	var carts []domain.Cart
	if err := r.db.Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to find carts: %w", err)
	}
	return carts, nil
}

func (r *GormCartRepository) Update(cart *domain.Cart) error {
	if err := r.db.Save(cart).Error; err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}

func (r *GormCartRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Cart{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cart %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormCartRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Cart{}).Error; err != nil {
		return fmt.Errorf("failed to delete carts: %w", err)
	}
	return nil
}

// GormCartItemRepository implements CartItemRepository using GORM.
type GormCartItemRepository struct {
	db *gorm.DB
}

// NewGormCartItemRepository creates a new GORM cart item repository.
func NewGormCartItemRepository(db *gorm.DB) *GormCartItemRepository {
	return &GormCartItemRepository{db: db}
}

func (r *GormCartItemRepository) Create(item *domain.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

func (r *GormCartItemRepository) FindByID(id uint) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return &item, nil
}

func (r *GormCartItemRepository) FindByCartID(cartID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := r.db.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}
	return items, nil
}

func (r *GormCartItemRepository) FindByProductID(productID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := r.db.Where("product_id = ?", productID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find cart items by product: %w", err)
	}
	return items, nil
}

func (r *GormCartItemRepository) Update(item *domain.CartItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

func (r *GormCartItemRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.CartItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cart item %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormCartItemRepository) DeleteByCartID(cartID uint) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	return nil
}

func (r *GormCartItemRepository) DeleteByProductID(productID uint) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&domain.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete cart items by product: %w", err)
	}
	return nil
}

func (r *GormCartItemRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations for the cart module.
func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Cart{}, &domain.CartItem{})
}
