package command

import (
	"context"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/user/domain"
)

// CreateAddressCommand represents the command to add an address to a user.
type CreateAddressCommand struct {
	UserID  uint
	Street  string
	City    string
	Country string
	Zip     string
	Default bool
}

func (cmd CreateAddressCommand) validate() error {
	if cmd.UserID == 0 {
		return apperr.Invalid("user_id", "is required")
	}
	if cmd.Street == "" {
		return apperr.Invalid("street", "is required")
	}
	if cmd.City == "" {
		return apperr.Invalid("city", "is required")
	}
	return nil
}

// CreateAddressHandler handles address creation. When the new address is
// the default, every other default of the same user is unset first; both
// writes share one transaction so two defaults can never survive it.
type CreateAddressHandler struct {
	runner integrity.Runner
}

// NewCreateAddressHandler creates a new create address handler.
func NewCreateAddressHandler(runner integrity.Runner) *CreateAddressHandler {
	return &CreateAddressHandler{runner: runner}
}

// Handle executes the create address command.
func (h *CreateAddressHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (*domain.Address, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	var created *domain.Address
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		if _, err := r.Users.FindByID(cmd.UserID); err != nil {
			return err
		}

		if cmd.Default {
			if err := r.Addresses.ClearDefaults(cmd.UserID); err != nil {
				return err
			}
		}

		address := &domain.Address{
			UserID:  cmd.UserID,
			Street:  cmd.Street,
			City:    cmd.City,
			Country: cmd.Country,
			Zip:     cmd.Zip,
			Default: cmd.Default,
		}
		if err := r.Addresses.Create(address); err != nil {
			return err
		}
		created = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateAddressCommand represents the command to update an address.
type UpdateAddressCommand struct {
	ID      uint
	Street  string
	City    string
	Country string
	Zip     string
	Default *bool
}

// UpdateAddressHandler handles address updates with the same default
// exclusivity rule as creation.
type UpdateAddressHandler struct {
	runner integrity.Runner
}

// NewUpdateAddressHandler creates a new update address handler.
func NewUpdateAddressHandler(runner integrity.Runner) *UpdateAddressHandler {
	return &UpdateAddressHandler{runner: runner}
}

// Handle executes the update address command.
func (h *UpdateAddressHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*domain.Address, error) {
	if cmd.ID == 0 {
		return nil, apperr.Invalid("id", "is required")
	}

	var updated *domain.Address
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		address, err := r.Addresses.FindByID(cmd.ID)
		if err != nil {
			return err
		}

		if cmd.Street != "" {
			address.Street = cmd.Street
		}
		if cmd.City != "" {
			address.City = cmd.City
		}
		if cmd.Country != "" {
			address.Country = cmd.Country
		}
		if cmd.Zip != "" {
			address.Zip = cmd.Zip
		}
		if cmd.Default != nil {
			if *cmd.Default {
				if err := r.Addresses.ClearDefaults(address.UserID); err != nil {
					return err
				}
			}
			address.Default = *cmd.Default
		}

		if err := r.Addresses.Update(address); err != nil {
			return err
		}
		updated = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAddressCommand represents the command to delete one address.
type DeleteAddressCommand struct {
	ID uint
}

// DeleteAddressHandler deletes a single address. Addresses are leaves, no
// cascade applies.
type DeleteAddressHandler struct {
	repo domain.AddressRepository
}

// NewDeleteAddressHandler creates a new delete address handler.
func NewDeleteAddressHandler(repo domain.AddressRepository) *DeleteAddressHandler {
	return &DeleteAddressHandler{repo: repo}
}

// Handle executes the delete address command.
func (h *DeleteAddressHandler) Handle(cmd DeleteAddressCommand) error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	return h.repo.Delete(cmd.ID)
}
