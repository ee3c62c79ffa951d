package ports

import (
	"context"

	"capsule/internal/core/domain/model/route"
)

// RouteRepository stores a route together with all of its stops.
type RouteRepository interface {
	// Add inserts the route row and one row per stop. Callers run it inside a
	// unit of work so that a failed stop leaves no route behind.
	Add(ctx context.Context, aggregate *route.Route) error
}
