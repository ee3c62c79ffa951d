package location

import (
	"errors"
	"strings"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

// Address is a user-owned postal address. It is unique by
// (address_line_1, address_line_2, city, state, country, postal_code, user_id);
// the owner is an opaque external user reference.
type Address struct {
	id           kernel.UUID
	userID       string
	place        Place
	addressLine1 string
	addressLine2 string
	postalCode   string
	coordinate   *kernel.Coordinate
	isValid      bool
	isBilling    bool
	isDefault    bool
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// AddressRecord carries the stored state of an Address for RestoreAddress.
type AddressRecord struct {
	ID           kernel.UUID
	UserID       string
	Place        Place
	AddressLine1 string
	AddressLine2 string
	PostalCode   string
	Coordinate   *kernel.Coordinate
	IsValid      bool
	IsBilling    bool
	IsDefault    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAddress builds a new Address for userID at place. Lines and postal code are
// normalized; address line 1 and postal code are required.
func NewAddress(userID string, place Place, addressLine1, addressLine2, postalCode string) (*Address, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := &Address{
		id:            kernel.NewUUID(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setUserID(userID),
		a.setLocation(place, addressLine1, addressLine2, postalCode),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress rebuilds an Address from persistence without renormalizing.
func RestoreAddress(r AddressRecord) (*Address, error) {
	if err := errors.Join(r.ID.Validate(), r.Place.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(r.UserID) == "" {
		return nil, errs.NewValueIsRequiredError("user_id")
	}

	return &Address{
		id:            r.ID,
		userID:        r.UserID,
		place:         r.Place,
		addressLine1:  r.AddressLine1,
		addressLine2:  r.AddressLine2,
		postalCode:    r.PostalCode,
		coordinate:    r.Coordinate,
		isValid:       r.IsValid,
		isBilling:     r.IsBilling,
		isDefault:     r.IsDefault,
		createdAt:     r.CreatedAt,
		updatedAt:     r.UpdatedAt,
		isConstructed: true,
	}, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID                { return a.id }
func (a *Address) UserID() string                 { return a.userID }
func (a *Address) Place() Place                   { return a.place }
func (a *Address) AddressLine1() string           { return a.addressLine1 }
func (a *Address) AddressLine2() string           { return a.addressLine2 }
func (a *Address) PostalCode() string             { return a.postalCode }
func (a *Address) Coordinate() *kernel.Coordinate { return a.coordinate }
func (a *Address) IsValid() bool                  { return a.isValid }
func (a *Address) IsBilling() bool                { return a.isBilling }
func (a *Address) IsDefault() bool                { return a.isDefault }
func (a *Address) CreatedAt() time.Time           { return a.createdAt }
func (a *Address) UpdatedAt() time.Time           { return a.updatedAt }

// Relocate moves the address to a new place and lines. The owner never changes.
// A move to a different location drops the validation flag and the coordinate,
// which belonged to the old location.
func (a *Address) Relocate(place Place, addressLine1, addressLine2, postalCode string) error {
	if err := a.Validate(); err != nil {
		return err
	}

	before := *a
	if err := a.setLocation(place, addressLine1, addressLine2, postalCode); err != nil {
		return err
	}

	if !a.place.IsEqual(before.place) ||
		a.addressLine1 != before.addressLine1 ||
		a.addressLine2 != before.addressLine2 ||
		a.postalCode != before.postalCode {
		a.isValid = false
		a.coordinate = nil
	}

	a.touch()
	return nil
}

// SetCoordinate records the address position. A nil coordinate clears it.
func (a *Address) SetCoordinate(c *kernel.Coordinate) error {
	if c != nil {
		if err := c.Validate(); err != nil {
			return err
		}
		copied := *c
		c = &copied
	}

	a.coordinate = c
	a.touch()
	return nil
}

func (a *Address) SetBilling(isBilling bool) {
	a.isBilling = isBilling
	a.touch()
}

// SetDefault flags the address as the owner's default. Clearing the flag on the
// owner's other addresses is done by the repository in the same transaction.
func (a *Address) SetDefault(isDefault bool) {
	a.isDefault = isDefault
	a.touch()
}

func (a *Address) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("user_id")
	}

	a.userID = userID
	return nil
}

func (a *Address) setLocation(place Place, addressLine1, addressLine2, postalCode string) error {
	addressLine1 = NormalizeAddressLine1(addressLine1)
	postalCode = NormalizePostalCode(postalCode)

	var err error
	if err = place.Validate(); err != nil {
		err = errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	if addressLine1 == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address_line_1"))
	}
	if postalCode == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("postal_code"))
	}
	if err != nil {
		return err
	}

	a.place = place
	a.addressLine1 = addressLine1
	a.addressLine2 = NormalizeUpper(addressLine2)
	a.postalCode = postalCode
	return nil
}

// touch keeps the stored precision so a reloaded row compares equal.
func (a *Address) touch() {
	a.updatedAt = time.Now().UTC().Truncate(time.Microsecond)
}
