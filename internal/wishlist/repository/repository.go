package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/wishlist/domain"
)

// GormWishListRepository implements WishListRepository using GORM.
type GormWishListRepository struct {
	db *gorm.DB
}

// NewGormWishListRepository creates a new GORM wish list repository.
func NewGormWishListRepository(db *gorm.DB) *GormWishListRepository {
	return &GormWishListRepository{db: db}
}

func (r *GormWishListRepository) Create(list *domain.WishList) error {
	if err := r.db.Create(list).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("wish list: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to create wish list: %w", err)
	}
	return nil
}

func (r *GormWishListRepository) FindByID(id uint) (*domain.WishList, error) {
	var list domain.WishList
	if err := r.db.First(&list, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wish list %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find wish list: %w", err)
	}
	return &list, nil
}

func (r *GormWishListRepository) FindByUserID(userID uint) (*domain.WishList, error) {
	var list domain.WishList
	if err := r.db.Where("user_id = ?", userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wish list for user %d: %w", userID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find wish list: %w", err)
	}
	return &list, nil
}

func (r *GormWishListRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.WishList{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete wish list: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("wish list %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormWishListRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.WishList{}).Error; err != nil {
		return fmt.Errorf("failed to delete wish lists: %w", err)
	}
	return nil
}

// GormWishListItemRepository implements WishListItemRepository using GORM.
type GormWishListItemRepository struct {
	db *gorm.DB
}

// NewGormWishListItemRepository creates a new GORM wish list item repository.
func NewGormWishListItemRepository(db *gorm.DB) *GormWishListItemRepository {
	return &GormWishListItemRepository{db: db}
}

func (r *GormWishListItemRepository) Create(item *domain.WishListItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wish list item: %w", err)
	}
	return nil
}

func (r *GormWishListItemRepository) FindByID(id uint) (*domain.WishListItem, error) {
	var item domain.WishListItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wish list item %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find wish list item: %w", err)
	}
	return &item, nil
}

func (r *GormWishListItemRepository) FindByWishListID(listID uint) ([]domain.WishListItem, error) {
	var items []domain.WishListItem
	if err := r.db.Where("wish_list_id = ?", listID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find wish list items: %w", err)
	}
	return items, nil
}

func (r *GormWishListItemRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.WishListItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete wish list item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("wish list item %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormWishListItemRepository) DeleteByWishListID(listID uint) error {
	if err := r.db.Where("wish_list_id = ?", listID).Delete(&domain.WishListItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete wish list items: %w", err)
	}
	return nil
}

func (r *GormWishListItemRepository) DeleteByProductID(productID uint) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&domain.WishListItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete wish list items by product: %w", err)
	}
	return nil
}

func (r *GormWishListItemRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.WishListItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete wish list items: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations for the wish list module.
func (r *GormWishListRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.WishList{}, &domain.WishListItem{})
}
