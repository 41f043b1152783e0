package domain

import (
	"time"

	"gorm.io/gorm"
)

// DefaultAvatarURL is written back to a principal record when its uploaded
// image is removed.
const DefaultAvatarURL = "/static/defaults/avatar.png"

// User represents a customer principal.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	FullName     string         `json:"full_name"`
	Phone        string         `json:"phone"`
	ImageURL     string         `json:"image_url"`
	LastLogin    *time.Time     `json:"last_login"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// Admin represents an administrator principal. Admins live in their own
// table; an admin session can never be produced from a customer record.
type Admin struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	FullName     string         `json:"full_name"`
	ImageURL     string         `json:"image_url"`
	LastLogin    *time.Time     `json:"last_login"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Admin) TableName() string {
	return "admins"
}

// Address belongs to one user. At most one address per user may be the
// default; the address commands enforce that by unsetting every other
// default before writing a new one.
type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Zip       string    `json:"zip"`
	Default   bool      `json:"default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}

// UserRepository defines the contract for user data access.
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	Update(user *User) error
	Delete(id uint) error
	DeleteAll() error
	Count() (int64, error)
}

// AdminRepository defines the contract for admin data access.
type AdminRepository interface {
	Create(admin *Admin) error
	FindByID(id uint) (*Admin, error)
	FindByEmail(email string) (*Admin, error)
	FindAll(limit, offset int) ([]Admin, error)
	Update(admin *Admin) error
	Delete(id uint) error
	DeleteAll() error
}

// AddressRepository defines the contract for address data access.
type AddressRepository interface {
	Create(address *Address) error
	FindByID(id uint) (*Address, error)
	FindByUserID(userID uint) ([]Address, error)
	Update(address *Address) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
	DeleteAll() error
	// ClearDefaults unsets the default flag on every address of the user.
	ClearDefaults(userID uint) error
}
