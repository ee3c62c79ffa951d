package commands

import (
	"errors"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand removes one of the user's addresses. The referenced
// Country, State and City are left in place.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    string

	guard guard.ConstructorGuard
}

func NewDeleteAddressCommand(addressID kernel.UUID, userID string) (DeleteAddressCommand, error) {
	cmd := DeleteAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		requireField("user_id", userID, &cmd.userID),
	); err != nil {
		return DeleteAddressCommand{}, err
	}

	return cmd, nil
}

func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

func (c DeleteAddressCommand) AddressID() kernel.UUID { return c.addressID }
func (c DeleteAddressCommand) UserID() string         { return c.userID }

func (c *DeleteAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
