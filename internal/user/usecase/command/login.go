package command

import (
	"time"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/user/domain"
	"github.com/nvasilev/storefront/pkg/auth"
)

// LoginCommand represents a login attempt for either principal kind.
type LoginCommand struct {
	Email    string
	Password string
}

func (cmd LoginCommand) validate() error {
	if cmd.Email == "" {
		return apperr.Invalid("email", "is required")
	}
	if cmd.Password == "" {
		return apperr.Invalid("password", "is required")
	}
	return nil
}

// LoginUserHandler authenticates customers.
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new customer login handler.
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle verifies credentials and returns the principal. The error for a
// wrong email and a wrong password is the same on purpose.
func (h *LoginUserHandler) Handle(cmd LoginCommand) (*domain.User, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperr.ErrAuthFailed
	}
	if !auth.CheckPassword(user.PasswordHash, cmd.Password) {
		return nil, apperr.ErrAuthFailed
	}

	now := time.Now()
	user.LastLogin = &now
	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginAdminHandler authenticates administrators.
type LoginAdminHandler struct {
	repo domain.AdminRepository
}

// NewLoginAdminHandler creates a new admin login handler.
func NewLoginAdminHandler(repo domain.AdminRepository) *LoginAdminHandler {
	return &LoginAdminHandler{repo: repo}
}

// Handle verifies admin credentials and returns the principal.
func (h *LoginAdminHandler) Handle(cmd LoginCommand) (*domain.Admin, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	admin, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperr.ErrAuthFailed
	}
	if !auth.CheckPassword(admin.PasswordHash, cmd.Password) {
		return nil, apperr.ErrAuthFailed
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := h.repo.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
