package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

func (r *GormProductRepository) FindByBrandID(brandID uint) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.Where("brand_id = ?", brandID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by brand: %w", err)
	}
	return products, nil
}

func (r *GormProductRepository) FindByCategoryID(categoryID uint) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by category: %w", err)
	}
	return products, nil
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *GormProductRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormProductRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	return nil
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *GormProductRepository) AdjustStock(id uint, delta int) error {
	result := r.db.Model(&domain.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// GormBrandRepository implements BrandRepository using GORM.
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GORM brand repository.
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

func (r *GormBrandRepository) Create(brand *domain.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("brand: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *GormBrandRepository) FindByID(id uint) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find brand: %w", err)
	}
	return &brand, nil
}

func (r *GormBrandRepository) FindAll() ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := r.db.Order("name").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to find brands: %w", err)
	}
	return brands, nil
}

func (r *GormBrandRepository) Update(brand *domain.Brand) error {
	if err := r.db.Save(brand).Error; err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	return nil
}

func (r *GormBrandRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Brand{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("brand %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormBrandRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Brand{}).Error; err != nil {
		return fmt.Errorf("failed to delete brands: %w", err)
	}
	return nil
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(category *domain.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) FindByID(id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll() ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	return categories, nil
}

func (r *GormCategoryRepository) Update(category *domain.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormCategoryRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Category{}).Error; err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations for the catalog module.
func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Brand{}, &domain.Category{}, &domain.Product{})
}
