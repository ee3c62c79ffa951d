// Package addressrepo persists user-owned addresses.
package addressrepo

import (
	"time"

	"capsule/internal/adapters/out/postgres/locationrepo"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// AddressDTO is a row of the addresses table. The natural key spans the
// normalized lines, the place, the postal code and the owner.
type AddressDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"not null;index;uniqueIndex:idx_addresses_natural_key"`
	AddressLine1 string    `gorm:"column:address_line_1;not null;uniqueIndex:idx_addresses_natural_key"`
	AddressLine2 string    `gorm:"column:address_line_2;not null;uniqueIndex:idx_addresses_natural_key"`
	PostalCode   string    `gorm:"not null;uniqueIndex:idx_addresses_natural_key"`
	CityID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_addresses_natural_key"`
	StateID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_addresses_natural_key"`
	CountryID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_addresses_natural_key"`
	Latitude     *float64
	Longitude    *float64
	IsValid      bool `gorm:"not null;index"`
	IsBilling    bool `gorm:"not null"`
	IsDefault    bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	City    *locationrepo.CityDTO    `gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
	State   *locationrepo.StateDTO   `gorm:"foreignKey:StateID;constraint:OnDelete:RESTRICT"`
	Country *locationrepo.CountryDTO `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// naturalKey lists the columns of idx_addresses_natural_key.
var naturalKey = []string{
	"address_line_1", "address_line_2", "city_id", "state_id", "country_id", "postal_code", "user_id",
}

func fromDomain(a *location.Address) AddressDTO {
	dto := AddressDTO{
		ID:           a.ID().Bytes(),
		UserID:       a.UserID(),
		AddressLine1: a.AddressLine1(),
		AddressLine2: a.AddressLine2(),
		PostalCode:   a.PostalCode(),
		CityID:       a.Place().CityID().Bytes(),
		StateID:      a.Place().StateID().Bytes(),
		CountryID:    a.Place().CountryID().Bytes(),
		IsValid:      a.IsValid(),
		IsBilling:    a.IsBilling(),
		IsDefault:    a.IsDefault(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}

	if c := a.Coordinate(); c != nil {
		lat, lng := c.Latitude(), c.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}

	return dto
}

func toDomain(dto AddressDTO) (*location.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	place, err := restorePlace(dto.CountryID, dto.StateID, dto.CityID)
	if err != nil {
		return nil, err
	}

	var coordinate *kernel.Coordinate
	if dto.Latitude != nil && dto.Longitude != nil {
		c, coordErr := kernel.NewCoordinate(*dto.Latitude, *dto.Longitude)
		if coordErr != nil {
			return nil, coordErr
		}
		coordinate = &c
	}

	return location.RestoreAddress(location.AddressRecord{
		ID:           id,
		UserID:       dto.UserID,
		Place:        place,
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		PostalCode:   dto.PostalCode,
		Coordinate:   coordinate,
		IsValid:      dto.IsValid,
		IsBilling:    dto.IsBilling,
		IsDefault:    dto.IsDefault,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}

func restorePlace(countryID, stateID, cityID uuid.UUID) (location.Place, error) {
	country, err := kernel.UUIDFromBytes(countryID[:])
	if err != nil {
		return location.Place{}, err
	}
	state, err := kernel.UUIDFromBytes(stateID[:])
	if err != nil {
		return location.Place{}, err
	}
	city, err := kernel.UUIDFromBytes(cityID[:])
	if err != nil {
		return location.Place{}, err
	}

	return location.RestorePlace(country, state, city)
}
