package queries

import (
	"errors"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery fetches a stored route with its stops.
type GetRouteQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}

	return GetRouteQuery{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

// PointView is an origin, destination or stop of a route.
type PointView struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// StopView is a route stop at its position in the optimized order.
type StopView struct {
	PointView
	Sequence     int
	DeliveryTime *time.Time
}

// RouteView is a route with its stops ordered by sequence.
type RouteView struct {
	ID          kernel.UUID
	Name        string
	Origin      PointView
	Destination PointView
	Stops       []StopView
	CreatedAt   time.Time
}
