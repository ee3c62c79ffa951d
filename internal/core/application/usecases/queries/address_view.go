// Package queries contains read-side use cases. Handlers read straight from the
// database with SQL and return flat views; they never load aggregates.
package queries

import (
	"database/sql"

	"capsule/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressView is the flat address representation: city, state and country are
// given by name and code instead of nested objects.
type AddressView struct {
	ID           kernel.UUID
	AddressLine1 string
	AddressLine2 string
	PostalCode   string
	City         string
	State        string
	Country      string
	Latitude     *float64
	Longitude    *float64
	IsValid      bool
	IsBilling    bool
	IsDefault    bool
}

const addressViewSelect = `
	SELECT
		a.id,
		a.address_line_1,
		a.address_line_2,
		a.postal_code,
		ci.name,
		st.name,
		co.code,
		a.latitude,
		a.longitude,
		a.is_valid,
		a.is_billing,
		a.is_default
	FROM addresses a
	JOIN cities ci ON ci.id = a.city_id
	JOIN states st ON st.id = a.state_id
	JOIN countries co ON co.id = a.country_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddressView(row rowScanner) (AddressView, error) {
	var (
		view      AddressView
		id        uuid.UUID
		latitude  sql.NullFloat64
		longitude sql.NullFloat64
	)

	if err := row.Scan(
		&id,
		&view.AddressLine1,
		&view.AddressLine2,
		&view.PostalCode,
		&view.City,
		&view.State,
		&view.Country,
		&latitude,
		&longitude,
		&view.IsValid,
		&view.IsBilling,
		&view.IsDefault,
	); err != nil {
		return AddressView{}, err
	}

	addressID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AddressView{}, err
	}
	view.ID = addressID

	if latitude.Valid && longitude.Valid {
		view.Latitude = &latitude.Float64
		view.Longitude = &longitude.Float64
	}

	return view, nil
}
