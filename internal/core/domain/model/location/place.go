package location

import (
	"errors"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrPlaceIsNotConstructed = errors.New("Place must be created via NewPlace or RestorePlace")

// Place is the resolved (country, state, city) triple an Address points at.
type Place struct {
	countryID kernel.UUID
	stateID   kernel.UUID
	cityID    kernel.UUID
	guard     guard.ConstructorGuard
}

// NewPlace checks that state and city belong to country, and city to state.
func NewPlace(country *Country, state *State, city *City) (Place, error) {
	if err := errors.Join(country.Validate(), state.Validate(), city.Validate()); err != nil {
		return Place{}, err
	}
	if !state.CountryID().IsEqual(country.ID()) {
		return Place{}, errs.NewValueIsInvalidErrorWithCause("state",
			errors.New("state belongs to another country"))
	}
	if !city.CountryID().IsEqual(country.ID()) || !city.StateID().IsEqual(state.ID()) {
		return Place{}, errs.NewValueIsInvalidErrorWithCause("city",
			errors.New("city belongs to another state or country"))
	}

	return RestorePlace(country.ID(), state.ID(), city.ID())
}

// RestorePlace rebuilds a Place from stored foreign keys.
func RestorePlace(countryID, stateID, cityID kernel.UUID) (Place, error) {
	if err := errors.Join(countryID.Validate(), stateID.Validate(), cityID.Validate()); err != nil {
		return Place{}, err
	}

	return Place{
		countryID: countryID,
		stateID:   stateID,
		cityID:    cityID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (p Place) Validate() error {
	return p.guard.Validate(ErrPlaceIsNotConstructed)
}

func (p Place) CountryID() kernel.UUID { return p.countryID }
func (p Place) StateID() kernel.UUID   { return p.stateID }
func (p Place) CityID() kernel.UUID    { return p.cityID }

func (p Place) IsEqual(other Place) bool {
	return p.countryID.IsEqual(other.countryID) &&
		p.stateID.IsEqual(other.stateID) &&
		p.cityID.IsEqual(other.cityID)
}
