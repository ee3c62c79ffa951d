// Package locationrepo stores the Country, State and City reference rows.
// Rows are append-only and resolved by natural key.
package locationrepo

import (
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// CountryDTO is a row of the countries table, unique by code.
type CountryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_countries_code"`
	Name            string    `gorm:"not null"`
	DefaultLanguage string    `gorm:"not null"`
	DefaultTimezone string    `gorm:"not null"`
}

func (CountryDTO) TableName() string {
	return "countries"
}

// StateDTO is a row of the states table, unique by (name, country_id).
// The name is empty for countries where the state was never given.
type StateDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CountryID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_states_natural_key"`
	Name      string      `gorm:"not null;uniqueIndex:idx_states_natural_key"`
	Country   *CountryDTO `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT"`
}

func (StateDTO) TableName() string {
	return "states"
}

// CityDTO is a row of the cities table, unique by (name, state_id, country_id).
type CityDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CountryID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_cities_natural_key"`
	StateID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_cities_natural_key"`
	Name      string      `gorm:"not null;uniqueIndex:idx_cities_natural_key"`
	Country   *CountryDTO `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT"`
	State     *StateDTO   `gorm:"foreignKey:StateID;constraint:OnDelete:RESTRICT"`
}

func (CityDTO) TableName() string {
	return "cities"
}

func countryFromDomain(c *location.Country) CountryDTO {
	return CountryDTO{
		ID:              c.ID().Bytes(),
		Code:            c.Code(),
		Name:            c.Name(),
		DefaultLanguage: c.DefaultLanguage(),
		DefaultTimezone: c.DefaultTimezone(),
	}
}

func countryToDomain(dto CountryDTO) (*location.Country, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreCountry(id, dto.Code, dto.Name, dto.DefaultLanguage, dto.DefaultTimezone)
}

func stateFromDomain(s *location.State) StateDTO {
	return StateDTO{
		ID:        s.ID().Bytes(),
		CountryID: s.CountryID().Bytes(),
		Name:      s.Name(),
	}
}

func stateToDomain(dto StateDTO) (*location.State, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	countryID, err := kernel.UUIDFromBytes(dto.CountryID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreState(id, countryID, dto.Name)
}

func cityFromDomain(c *location.City) CityDTO {
	return CityDTO{
		ID:        c.ID().Bytes(),
		CountryID: c.CountryID().Bytes(),
		StateID:   c.StateID().Bytes(),
		Name:      c.Name(),
	}
}

func cityToDomain(dto CityDTO) (*location.City, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	countryID, err := kernel.UUIDFromBytes(dto.CountryID[:])
	if err != nil {
		return nil, err
	}
	stateID, err := kernel.UUIDFromBytes(dto.StateID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreCity(id, countryID, stateID, dto.Name)
}
