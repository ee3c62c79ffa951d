package commands

import (
	"context"
	"errors"

	"capsule/internal/core/domain/model/location"
	"capsule/internal/core/ports"
	"capsule/internal/pkg/errs"
)

// RawLocation holds address fragments as a client or a geocoder supplied them.
type RawLocation struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	CountryCode  string
}

// Hierarchy is a resolved Country/State/City triple with the normalized address lines.
type Hierarchy struct {
	Country      *location.Country
	State        *location.State
	City         *location.City
	Place        location.Place
	AddressLine1 string
	AddressLine2 string
}

// HierarchyResolver maps raw address fragments to canonical Country, State and
// City rows, creating missing ones. Input is normalized first, so "new york" and
// "  NEW  York" resolve to the same City.
type HierarchyResolver struct {
	repo ports.LocationRepository
}

// NewHierarchyResolver binds a resolver to a repository, usually one obtained
// from the caller's unit of work.
func NewHierarchyResolver(repo ports.LocationRepository) HierarchyResolver {
	return HierarchyResolver{repo: repo}
}

// Resolve resolves Country by code, then State within it, then City within both.
// Validation happens before any storage access.
func (r HierarchyResolver) Resolve(ctx context.Context, raw RawLocation) (Hierarchy, error) {
	countryCode := location.NormalizeUpper(raw.CountryCode)
	stateName := location.NormalizeUpper(raw.State)
	cityName := location.NormalizeUpper(raw.City)

	var err error
	switch {
	case countryCode == "":
		err = errs.NewValueIsRequiredError("country")
	case !location.IsCountryCode(countryCode):
		err = errs.NewValueIsInvalidError("country")
	}
	if cityName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("city"))
	}
	if err != nil {
		return Hierarchy{}, err
	}

	countryCandidate, err := location.NewCountry(countryCode)
	if err != nil {
		return Hierarchy{}, err
	}
	country, err := r.repo.GetOrCreateCountry(ctx, countryCandidate)
	if err != nil {
		return Hierarchy{}, err
	}

	stateCandidate, err := location.NewState(country.ID(), stateName)
	if err != nil {
		return Hierarchy{}, err
	}
	state, err := r.repo.GetOrCreateState(ctx, stateCandidate)
	if err != nil {
		return Hierarchy{}, err
	}

	cityCandidate, err := location.NewCity(country.ID(), state.ID(), cityName)
	if err != nil {
		return Hierarchy{}, err
	}
	city, err := r.repo.GetOrCreateCity(ctx, cityCandidate)
	if err != nil {
		return Hierarchy{}, err
	}

	place, err := location.NewPlace(country, state, city)
	if err != nil {
		return Hierarchy{}, err
	}

	return Hierarchy{
		Country:      country,
		State:        state,
		City:         city,
		Place:        place,
		AddressLine1: location.NormalizeAddressLine1(raw.AddressLine1),
		AddressLine2: location.NormalizeUpper(raw.AddressLine2),
	}, nil
}
