package location

import (
	"errors"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/guard"
)

var ErrStateIsNotConstructed = errors.New("State must be created via NewState or RestoreState")

// State is unique by (name, country). The name may be empty when the source data
// has no administrative area; that empty-name row is shared by every such city in
// the country.
type State struct {
	id        kernel.UUID
	countryID kernel.UUID
	name      string
	guard     guard.ConstructorGuard
}

func NewState(countryID kernel.UUID, name string) (*State, error) {
	if err := countryID.Validate(); err != nil {
		return nil, err
	}

	return &State{
		id:        kernel.NewUUID(),
		countryID: countryID,
		name:      NormalizeUpper(name),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func RestoreState(id kernel.UUID, countryID kernel.UUID, name string) (*State, error) {
	if err := errors.Join(id.Validate(), countryID.Validate()); err != nil {
		return nil, err
	}

	return &State{
		id:        id,
		countryID: countryID,
		name:      name,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s *State) Validate() error {
	if s == nil {
		return ErrStateIsNotConstructed
	}
	return s.guard.Validate(ErrStateIsNotConstructed)
}

func (s *State) ID() kernel.UUID        { return s.id }
func (s *State) CountryID() kernel.UUID { return s.countryID }
func (s *State) Name() string           { return s.name }
