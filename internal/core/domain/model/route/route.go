package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
)

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute")

// Route is an origin/destination pair with the stops between them.
//
// Invariants:
//   - at least one stop
//   - stops are held in sequence order and stop i has sequence i
//   - immutable once built
type Route struct {
	id          kernel.UUID
	name        string
	origin      Waypoint
	destination Waypoint
	stops       []Stop
	createdAt   time.Time

	isConstructed bool
}

// NewRoute builds a route from already sequenced stops.
func NewRoute(name string, origin Waypoint, destination Waypoint, stops []Stop) (*Route, error) {
	return buildRoute(kernel.NewUUID(), name, origin, destination, stops, time.Now().UTC())
}

// buildRoute sorts stops by sequence; the sequences must form 0..n-1.
func buildRoute(
	id kernel.UUID, name string, origin Waypoint, destination Waypoint, stops []Stop, createdAt time.Time,
) (*Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var err error
	if origin.Validate() != nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("origin"))
	}
	if destination.Validate() != nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("destination"))
	}
	if len(stops) == 0 {
		err = errors.Join(err, errs.NewValueIsRequiredError("stops"))
	}
	if err != nil {
		return nil, err
	}

	ordered := make([]Stop, len(stops))
	seen := make([]bool, len(stops))
	for _, s := range stops {
		if err = s.Validate(); err != nil {
			return nil, err
		}
		seq := s.Sequence()
		if seq >= len(stops) || seen[seq] {
			return nil, errs.NewValueIsInvalidErrorWithCause("stops",
				fmt.Errorf("sequence %d is out of order for %d stops", seq, len(stops)))
		}
		seen[seq] = true
		ordered[seq] = s
	}

	return &Route{
		id:            id,
		name:          strings.TrimSpace(name),
		origin:        origin,
		destination:   destination,
		stops:         ordered,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

func (r *Route) ID() kernel.UUID       { return r.id }
func (r *Route) Name() string          { return r.name }
func (r *Route) Origin() Waypoint      { return r.origin }
func (r *Route) Destination() Waypoint { return r.destination }
func (r *Route) CreatedAt() time.Time  { return r.createdAt }

// Stops returns a copy of the stops in sequence order.
func (r *Route) Stops() []Stop {
	stops := make([]Stop, len(r.stops))
	copy(stops, r.stops)
	return stops
}

func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}
