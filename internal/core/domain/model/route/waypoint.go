package route

import (
	"strings"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrWaypointIsNotConstructed = errs.NewValueIsRequiredError("waypoint must be created via NewWaypoint")

// Waypoint is a point on a route: free-text address plus its coordinate.
type Waypoint struct {
	address    string
	coordinate kernel.Coordinate
	guard      guard.ConstructorGuard
}

func NewWaypoint(address string, coordinate kernel.Coordinate) (Waypoint, error) {
	if err := coordinate.Validate(); err != nil {
		return Waypoint{}, err
	}

	return Waypoint{
		address:    strings.TrimSpace(address),
		coordinate: coordinate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (w Waypoint) Validate() error {
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

func (w Waypoint) Address() string               { return w.address }
func (w Waypoint) Coordinate() kernel.Coordinate { return w.coordinate }

// PlannedStop is a stop as submitted, before the provider has ordered it.
type PlannedStop struct {
	Waypoint     Waypoint
	DeliveryTime *time.Time
}
