package command

import (
	"context"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/user/domain"
)

// DeleteUserCommand represents the command to delete a user and the full
// dependent subtree.
type DeleteUserCommand struct {
	ID uint
}

// DeleteUserHandler routes user deletion through the cascade orchestrator.
type DeleteUserHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteUserHandler creates a new delete user handler.
func NewDeleteUserHandler(cascader *integrity.Cascader) *DeleteUserHandler {
	return &DeleteUserHandler{cascader: cascader}
}

// Handle executes the delete user command.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) (*domain.User, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}
	return h.cascader.DeleteUser(ctx, cmd.ID)
}

// DeleteAllUsersHandler wipes the user collection and everything owned by
// it, one batch per stage.
type DeleteAllUsersHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteAllUsersHandler creates a new bulk delete handler.
func NewDeleteAllUsersHandler(cascader *integrity.Cascader) *DeleteAllUsersHandler {
	return &DeleteAllUsersHandler{cascader: cascader}
}

// Handle executes the bulk delete.
func (h *DeleteAllUsersHandler) Handle(ctx context.Context) error {
	return h.cascader.DeleteAllUsers(ctx)
}

// DeleteAdminCommand represents the command to delete an administrator.
// Admins own no dependent records, so no cascade is involved.
type DeleteAdminCommand struct {
	ID uint
}

// DeleteAdminHandler deletes administrator records.
type DeleteAdminHandler struct {
	repo domain.AdminRepository
}

// NewDeleteAdminHandler creates a new delete admin handler.
func NewDeleteAdminHandler(repo domain.AdminRepository) *DeleteAdminHandler {
	return &DeleteAdminHandler{repo: repo}
}

// Handle executes the delete admin command.
func (h *DeleteAdminHandler) Handle(cmd DeleteAdminCommand) error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	return h.repo.Delete(cmd.ID)
}
