// Package routerepo persists routes together with their ordered stops.
package routerepo

import (
	"time"

	"capsule/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO is a row of the routes table. Origin and destination are embedded
// as origin_* and destination_* columns.
type RouteDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"not null"`
	Origin      PointDTO       `gorm:"embedded;embeddedPrefix:origin_"`
	Destination PointDTO       `gorm:"embedded;embeddedPrefix:destination_"`
	CreatedAt   time.Time      `gorm:"not null"`
	Stops       []RouteStopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

type PointDTO struct {
	Address   string  `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

// RouteStopDTO is a row of route_stops. Sequence is the stop's 0-based
// position in the optimized order and is unique per route.
type RouteStopDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_stops_sequence"`
	Sequence     int       `gorm:"not null;uniqueIndex:idx_route_stops_sequence"`
	Address      string    `gorm:"not null"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
	DeliveryTime *time.Time
}

func (RouteStopDTO) TableName() string {
	return "route_stops"
}

func fromDomain(r *route.Route) RouteDTO {
	dto := RouteDTO{
		ID:          r.ID().Bytes(),
		Name:        r.Name(),
		Origin:      pointFromDomain(r.Origin()),
		Destination: pointFromDomain(r.Destination()),
		CreatedAt:   r.CreatedAt(),
	}

	stops := r.Stops()
	dto.Stops = make([]RouteStopDTO, 0, len(stops))
	for _, s := range stops {
		point := pointFromDomain(s.Waypoint())
		dto.Stops = append(dto.Stops, RouteStopDTO{
			ID:           uuid.New(),
			RouteID:      dto.ID,
			Sequence:     s.Sequence(),
			Address:      point.Address,
			Latitude:     point.Latitude,
			Longitude:    point.Longitude,
			DeliveryTime: s.DeliveryTime(),
		})
	}

	return dto
}

func pointFromDomain(w route.Waypoint) PointDTO {
	return PointDTO{
		Address:   w.Address(),
		Latitude:  w.Coordinate().Latitude(),
		Longitude: w.Coordinate().Longitude(),
	}
}
