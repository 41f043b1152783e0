package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/order/domain"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(order *domain.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByUserID(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

func (r *GormOrderRepository) Update(order *domain.Order) error {
	if err := r.db.Save(order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *GormOrderRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormOrderRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&domain.Order{}).Error; err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	return nil
}

func (r *GormOrderRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Order{}).Error; err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	return nil
}

// GormOrderItemRepository implements OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GORM order item repository.
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

func (r *GormOrderItemRepository) Create(item *domain.OrderItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create order item: %w", err)
	}
	return nil
}

func (r *GormOrderItemRepository) FindByID(id uint) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order item %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find order item: %w", err)
	}
	return &item, nil
}

func (r *GormOrderItemRepository) FindByOrderID(orderID uint) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find order items: %w", err)
	}
	return items, nil
}

func (r *GormOrderItemRepository) FindByProductID(productID uint) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	if err := r.db.Where("product_id = ?", productID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find order items by product: %w", err)
	}
	return items, nil
}

func (r *GormOrderItemRepository) Update(item *domain.OrderItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}
	return nil
}

func (r *GormOrderItemRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.OrderItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order item %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormOrderItemRepository) DeleteByOrderID(orderID uint) error {
	if err := r.db.Where("order_id = ?", orderID).Delete(&domain.OrderItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	return nil
}

func (r *GormOrderItemRepository) DeleteByProductID(productID uint) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&domain.OrderItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete order items by product: %w", err)
	}
	return nil
}

func (r *GormOrderItemRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.OrderItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations for the order module.
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}
