package commands

import (
	"errors"
	"strings"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// AddressFields is the typed address payload for creation. Latitude and Longitude
// are optional but must be given together.
type AddressFields struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	PostalCode   string
	Latitude     *float64
	Longitude    *float64
	IsBilling    bool
	IsDefault    bool
}

// CreateAddressCommand registers an address for a user. Submitting the same
// normalized address twice yields the same stored address.
//
// Example:
//
//	cmd, err := NewCreateAddressCommand("user-42", AddressFields{
//	    AddressLine1: "350 5th ave",
//	    City:         "new york",
//	    State:        "ny",
//	    Country:      "us",
//	    PostalCode:   "10118",
//	})
//	id, err := handler.Handle(ctx, cmd)
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	userID     string
	raw        RawLocation
	postalCode string
	coordinate *kernel.Coordinate
	isBilling  bool
	isDefault  bool

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand checks user_id, address_line_1, city, country and
// postal_code are present and that coordinates, when given, are in range.
func NewCreateAddressCommand(userID string, fields AddressFields) (CreateAddressCommand, error) {
	cmd := CreateAddressCommand{
		isBilling: fields.IsBilling,
		isDefault: fields.IsDefault,
		raw: RawLocation{
			AddressLine2: fields.AddressLine2,
			State:        fields.State,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		requireField("address_line_1", fields.AddressLine1, &cmd.raw.AddressLine1),
		requireField("city", fields.City, &cmd.raw.City),
		requireField("country", fields.Country, &cmd.raw.CountryCode),
		requireField("postal_code", fields.PostalCode, &cmd.postalCode),
		cmd.setCoordinate(fields.Latitude, fields.Longitude),
	); err != nil {
		return CreateAddressCommand{}, err
	}

	return cmd, nil
}

func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

func (c CreateAddressCommand) UserID() string                 { return c.userID }
func (c CreateAddressCommand) Location() RawLocation          { return c.raw }
func (c CreateAddressCommand) PostalCode() string             { return c.postalCode }
func (c CreateAddressCommand) Coordinate() *kernel.Coordinate { return c.coordinate }
func (c CreateAddressCommand) IsBilling() bool                { return c.isBilling }
func (c CreateAddressCommand) IsDefault() bool                { return c.isDefault }

func (c *CreateAddressCommand) setUserID(userID string) error {
	return requireField("user_id", userID, &c.userID)
}

func (c *CreateAddressCommand) setCoordinate(latitude, longitude *float64) error {
	coordinate, err := optionalCoordinate(latitude, longitude)
	if err != nil {
		return err
	}

	c.coordinate = coordinate
	return nil
}

// requireField stores the trimmed value into dst or reports the field as missing.
func requireField(name string, value string, dst *string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*dst = value
	return nil
}

func optionalCoordinate(latitude, longitude *float64) (*kernel.Coordinate, error) {
	switch {
	case latitude == nil && longitude == nil:
		return nil, nil
	case latitude == nil:
		return nil, errs.NewValueIsRequiredError("latitude")
	case longitude == nil:
		return nil, errs.NewValueIsRequiredError("longitude")
	}

	coordinate, err := kernel.NewCoordinate(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	return &coordinate, nil
}
