package command

import (
	"strings"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/user/domain"
	"github.com/nvasilev/storefront/pkg/auth"
)

// UpdateUserCommand represents a profile update. Empty fields are left
// unchanged.
type UpdateUserCommand struct {
	ID       uint
	Email    string
	FullName string
	Phone    string
	Password string
}

func (cmd UpdateUserCommand) validate() error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	if cmd.Email != "" && !strings.Contains(cmd.Email, "@") {
		return apperr.Invalid("email", "must be a valid email address")
	}
	if cmd.Password != "" && len(cmd.Password) < 6 {
		return apperr.Invalid("password", "must be at least 6 characters")
	}
	return nil
}

// UpdateUserHandler handles profile updates.
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler.
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command.
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != "" {
		user.Email = cmd.Email
	}
	if cmd.FullName != "" {
		user.FullName = cmd.FullName
	}
	if cmd.Phone != "" {
		user.Phone = cmd.Phone
	}
	if cmd.Password != "" {
		hash, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
