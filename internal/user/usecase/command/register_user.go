package command

import (
	"errors"
	"fmt"
	"strings"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/user/domain"
	"github.com/nvasilev/storefront/pkg/auth"
)

// RegisterUserCommand represents the command to register a new customer.
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

func (cmd RegisterUserCommand) validate() error {
	if cmd.Username == "" {
		return apperr.Invalid("username", "is required")
	}
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return apperr.Invalid("email", "must be a valid email address")
	}
	if len(cmd.Password) < 6 {
		return apperr.Invalid("password", "must be at least 6 characters")
	}
	return nil
}

// RegisterUserHandler handles customer registration.
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler.
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command.
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	if existing, err := h.repo.FindByEmail(cmd.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email: %w", apperr.ErrConstraint)
	} else if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hash,
		FullName:     cmd.FullName,
		Phone:        cmd.Phone,
		ImageURL:     domain.DefaultAvatarURL,
	}
	if err := h.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterAdminCommand represents the command to create an administrator.
type RegisterAdminCommand struct {
	Username string
	Email    string
	Password string
	FullName string
}

func (cmd RegisterAdminCommand) validate() error {
	if cmd.Username == "" {
		return apperr.Invalid("username", "is required")
	}
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return apperr.Invalid("email", "must be a valid email address")
	}
	if len(cmd.Password) < 6 {
		return apperr.Invalid("password", "must be at least 6 characters")
	}
	return nil
}

// RegisterAdminHandler handles administrator creation.
type RegisterAdminHandler struct {
	repo domain.AdminRepository
}

// NewRegisterAdminHandler creates a new register admin handler.
func NewRegisterAdminHandler(repo domain.AdminRepository) *RegisterAdminHandler {
	return &RegisterAdminHandler{repo: repo}
}

// Handle executes the register admin command.
func (h *RegisterAdminHandler) Handle(cmd RegisterAdminCommand) (*domain.Admin, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	if existing, err := h.repo.FindByEmail(cmd.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email: %w", apperr.ErrConstraint)
	} else if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hash,
		FullName:     cmd.FullName,
		ImageURL:     domain.DefaultAvatarURL,
	}
	if err := h.repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
