package location

import (
	"errors"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrCityIsNotConstructed = errors.New("City must be created via NewCity or RestoreCity")

// City is unique by (name, state, country).
type City struct {
	id        kernel.UUID
	countryID kernel.UUID
	stateID   kernel.UUID
	name      string
	guard     guard.ConstructorGuard
}

func NewCity(countryID kernel.UUID, stateID kernel.UUID, name string) (*City, error) {
	name = NormalizeUpper(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("city")
	}
	if err := errors.Join(countryID.Validate(), stateID.Validate()); err != nil {
		return nil, err
	}

	return &City{
		id:        kernel.NewUUID(),
		countryID: countryID,
		stateID:   stateID,
		name:      name,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func RestoreCity(id kernel.UUID, countryID kernel.UUID, stateID kernel.UUID, name string) (*City, error) {
	if err := errors.Join(id.Validate(), countryID.Validate(), stateID.Validate()); err != nil {
		return nil, err
	}

	return &City{
		id:        id,
		countryID: countryID,
		stateID:   stateID,
		name:      name,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c *City) Validate() error {
	if c == nil {
		return ErrCityIsNotConstructed
	}
	return c.guard.Validate(ErrCityIsNotConstructed)
}

func (c *City) ID() kernel.UUID        { return c.id }
func (c *City) CountryID() kernel.UUID { return c.countryID }
func (c *City) StateID() kernel.UUID   { return c.stateID }
func (c *City) Name() string           { return c.name }
