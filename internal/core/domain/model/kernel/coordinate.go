package kernel

import (
	"errors"
	"strconv"

	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate")

// Coordinate is a WGS84 latitude/longitude pair. Both bounds are inclusive.
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

func NewCoordinate(latitude float64, longitude float64) (Coordinate, error) {
	c := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

func (c Coordinate) Latitude() float64 {
	return c.latitude
}

func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// String renders "lat,lng", the form directions providers accept for origin,
// destination and waypoints.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.longitude, 'f', -1, 64)
}

func (c Coordinate) IsEqual(other Coordinate) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

func (c *Coordinate) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

func (c *Coordinate) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}
