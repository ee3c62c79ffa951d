package commands

import (
	"errors"
	"fmt"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/route"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// RoutePoint is a submitted origin, destination or stop.
type RoutePoint struct {
	Address      string
	Latitude     float64
	Longitude    float64
	DeliveryTime *time.Time
}

// CreateRouteCommand asks for an optimized route from origin to destination
// through every stop.
//
// Example:
//
//	cmd, err := NewCreateRouteCommand("Monday",
//	    &RoutePoint{Address: "Warehouse", Latitude: 40.71, Longitude: -74.00},
//	    []RoutePoint{{Address: "A", Latitude: 40.73, Longitude: -73.99}},
//	    &RoutePoint{Address: "Depot", Latitude: 40.75, Longitude: -73.98},
//	)
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	name        string
	origin      route.Waypoint
	destination route.Waypoint
	stops       []route.PlannedStop

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand requires origin, destination and at least one stop, each
// with an in-range coordinate. Errors name the offending field.
func NewCreateRouteCommand(
	name string, origin *RoutePoint, stops []RoutePoint, destination *RoutePoint,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrigin(origin),
		cmd.setStops(stops),
		cmd.setDestination(destination),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) Name() string                { return c.name }
func (c CreateRouteCommand) Origin() route.Waypoint      { return c.origin }
func (c CreateRouteCommand) Destination() route.Waypoint { return c.destination }

// Stops returns the stops in submission order.
func (c CreateRouteCommand) Stops() []route.PlannedStop {
	stops := make([]route.PlannedStop, len(c.stops))
	copy(stops, c.stops)
	return stops
}

// StopCoordinates returns the stop coordinates in submission order.
func (c CreateRouteCommand) StopCoordinates() []kernel.Coordinate {
	coordinates := make([]kernel.Coordinate, 0, len(c.stops))
	for _, s := range c.stops {
		coordinates = append(coordinates, s.Waypoint.Coordinate())
	}
	return coordinates
}

func (c *CreateRouteCommand) setOrigin(origin *RoutePoint) error {
	w, err := toWaypoint("origin", origin)
	if err != nil {
		return err
	}

	c.origin = w
	return nil
}

func (c *CreateRouteCommand) setDestination(destination *RoutePoint) error {
	w, err := toWaypoint("destination", destination)
	if err != nil {
		return err
	}

	c.destination = w
	return nil
}

func (c *CreateRouteCommand) setStops(stops []RoutePoint) error {
	if len(stops) == 0 {
		return errs.NewValueIsRequiredError("stops")
	}

	planned := make([]route.PlannedStop, 0, len(stops))
	var err error
	for i := range stops {
		w, wErr := toWaypoint(fmt.Sprintf("stops[%d]", i), &stops[i])
		if wErr != nil {
			err = errors.Join(err, wErr)
			continue
		}
		planned = append(planned, route.PlannedStop{Waypoint: w, DeliveryTime: stops[i].DeliveryTime})
	}
	if err != nil {
		return err
	}

	c.stops = planned
	return nil
}

func toWaypoint(field string, p *RoutePoint) (route.Waypoint, error) {
	if p == nil {
		return route.Waypoint{}, errs.NewValueIsRequiredError(field)
	}

	coordinate, err := kernel.NewCoordinate(p.Latitude, p.Longitude)
	if err != nil {
		return route.Waypoint{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}

	return route.NewWaypoint(p.Address, coordinate)
}
