package ports

import (
	"context"
	"encoding/json"

	"capsule/internal/core/domain/model/kernel"
)

// OptimizedRoute is a directions provider answer for an optimized route.
type OptimizedRoute struct {
	// WaypointOrder is the visiting order of the submitted stops, as indices into them.
	WaypointOrder []int
	// Payload is the provider response body, kept verbatim.
	Payload json.RawMessage
}

// DirectionsClient asks a directions provider to optimize the order of stops
// between origin and destination. It does not interpret WaypointOrder.
//
// Errors:
//   - empty stops or unconstructed coordinates: validation errors
//   - network, timeout, non-2xx: errs.ProviderUnavailableError
//   - non-OK provider status: errs.ProviderRejectedError
//   - undecodable body or missing routes[0].waypoint_order: errs.MalformedResponseError
type DirectionsClient interface {
	Optimize(
		ctx context.Context, origin kernel.Coordinate, stops []kernel.Coordinate, destination kernel.Coordinate,
	) (OptimizedRoute, error)
}
