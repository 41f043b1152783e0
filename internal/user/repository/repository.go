package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/user/domain"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindAll(limit, offset int) ([]domain.User, error) {
	var users []domain.User
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

func (r *GormUserRepository) Update(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormUserRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}

func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GormAdminRepository implements AdminRepository using GORM.
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GORM admin repository.
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) Create(admin *domain.Admin) error {
	if err := r.db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("admin: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *GormAdminRepository) FindByID(id uint) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

func (r *GormAdminRepository) FindByEmail(email string) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin: %w", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

func (r *GormAdminRepository) FindAll(limit, offset int) ([]domain.Admin, error) {
	var admins []domain.Admin
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to find admins: %w", err)
	}
	return admins, nil
}

func (r *GormAdminRepository) Update(admin *domain.Admin) error {
	if err := r.db.Save(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("admin: %w", apperr.ErrConstraint)
		}
		return fmt.Errorf("failed to update admin: %w", err)
	}
	return nil
}

func (r *GormAdminRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Admin{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("admin %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormAdminRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Admin{}).Error; err != nil {
		return fmt.Errorf("failed to delete admins: %w", err)
	}
	return nil
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Create(address *domain.Address) error {
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (r *GormAddressRepository) FindByID(id uint) (*domain.Address, error) {
	var address domain.Address
	if err := r.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return &address, nil
}

func (r *GormAddressRepository) FindByUserID(userID uint) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := r.db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to find addresses: %w", err)
	}
	return addresses, nil
}

func (r *GormAddressRepository) Update(address *domain.Address) error {
	if err := r.db.Save(address).Error; err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	return nil
}

func (r *GormAddressRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Address{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("address %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *GormAddressRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&domain.Address{}).Error; err != nil {
		return fmt.Errorf("failed to delete addresses: %w", err)
	}
	return nil
}

func (r *GormAddressRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.Address{}).Error; err != nil {
		return fmt.Errorf("failed to delete addresses: %w", err)
	}
	return nil
}

func (r *GormAddressRepository) ClearDefaults(userID uint) error {
	err := r.db.Model(&domain.Address{}).
		Where(`user_id = ? AND "default" = ?`, userID, true).
		Update("default", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear default addresses: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations for the user module.
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{}, &domain.Admin{}, &domain.Address{})
}
