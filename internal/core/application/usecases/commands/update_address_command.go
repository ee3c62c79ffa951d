package commands

import (
	"errors"
	"strings"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// AddressPatch is the typed update payload. Nil means "not supplied".
type AddressPatch struct {
	AddressLine1 *string
	AddressLine2 *string
	PostalCode   *string
	City         *string
	State        *string
	Country      *string
	Latitude     *float64
	Longitude    *float64
	IsBilling    *bool
	IsDefault    *bool
}

// UpdateAddressCommand replaces the location of an existing address.
// address_line_1, postal_code, city, state and country must all be supplied;
// the first missing one, in that order, is reported.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID    kernel.UUID
	userID       string
	raw          RawLocation
	postalCode   string
	addressLine2 *string
	coordinate   *kernel.Coordinate
	isBilling    *bool
	isDefault    *bool

	guard guard.ConstructorGuard
}

func NewUpdateAddressCommand(addressID kernel.UUID, userID string, patch AddressPatch) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		addressLine2: patch.AddressLine2,
		isBilling:    patch.IsBilling,
		isDefault:    patch.IsDefault,
		guard:        guard.NewConstructorGuard(),
	}

	if err := addressID.Validate(); err != nil {
		return UpdateAddressCommand{}, err
	}
	cmd.addressID = addressID

	if err := requireField("user_id", userID, &cmd.userID); err != nil {
		return UpdateAddressCommand{}, err
	}

	required := []struct {
		name  string
		value *string
		dst   *string
	}{
		{name: "address_line_1", value: patch.AddressLine1, dst: &cmd.raw.AddressLine1},
		{name: "postal_code", value: patch.PostalCode, dst: &cmd.postalCode},
		{name: "city", value: patch.City, dst: &cmd.raw.City},
		{name: "state", value: patch.State, dst: &cmd.raw.State},
		{name: "country", value: patch.Country, dst: &cmd.raw.CountryCode},
	}
	for _, field := range required {
		if field.value == nil || strings.TrimSpace(*field.value) == "" {
			return UpdateAddressCommand{}, errs.NewValueIsRequiredError(field.name)
		}
		*field.dst = strings.TrimSpace(*field.value)
	}

	coordinate, err := optionalCoordinate(patch.Latitude, patch.Longitude)
	if err != nil {
		return UpdateAddressCommand{}, err
	}
	cmd.coordinate = coordinate

	return cmd, nil
}

func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) AddressID() kernel.UUID         { return c.addressID }
func (c UpdateAddressCommand) UserID() string                 { return c.userID }
func (c UpdateAddressCommand) PostalCode() string             { return c.postalCode }
func (c UpdateAddressCommand) Coordinate() *kernel.Coordinate { return c.coordinate }
func (c UpdateAddressCommand) IsBilling() *bool               { return c.isBilling }
func (c UpdateAddressCommand) IsDefault() *bool               { return c.isDefault }

// Location returns the raw location. When address line 2 was not supplied,
// current is used.
func (c UpdateAddressCommand) Location(current string) RawLocation {
	raw := c.raw
	raw.AddressLine2 = current
	if c.addressLine2 != nil {
		raw.AddressLine2 = *c.addressLine2
	}
	return raw
}
