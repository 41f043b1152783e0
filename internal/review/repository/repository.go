package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/review/domain"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(review *domain.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *GormReviewRepository) FindByID(id uint) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return &review, nil
}

func (r *GormReviewRepository) FindByProductID(productID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	return reviews, nil
}

func (r *GormReviewRepository) FindByUserID(userID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	return reviews, nil
}

func (r *GormReviewRepository) Update(review *domain.Review) error {
	if err := r.db.Save(review).Error; err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *GormReviewRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("review %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormReviewRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&domain.Review{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	return nil
}

func (r *GormReviewRepository) DeleteByProductID(productID uint) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&domain.Review{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews by product: %w", err)
	}
	return nil
}

func (r *GormReviewRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Review{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations for the review module.
func (r *GormReviewRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Review{})
}
